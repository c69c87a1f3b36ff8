package convert

import (
	"fmt"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/arloliu/dnacoder/internal/logging"
	"github.com/arloliu/dnacoder/internal/options"
	"github.com/arloliu/dnacoder/internal/pool"
)

// Config holds the settings of a Converter.
type Config struct {
	variant     format.Variant
	compression format.CompressionType
	bufferSize  int
	logger      logging.Logger
}

// Option configures a Converter.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		variant:     format.VariantFourSymbol,
		compression: format.CompressionNone,
		bufferSize:  pool.CopyBufferDefaultSize,
		logger:      logging.NopLogger{},
	}
}

// WithVariant sets the variant of resources created by the Converter.
// The default is format.VariantFourSymbol.
func WithVariant(variant format.Variant) Option {
	return options.New(func(c *Config) error {
		if !variant.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidVariant, uint8(variant))
		}
		c.variant = variant

		return nil
	})
}

// WithCompression sets the payload compression. The default is format.CompressionNone.
//
// The payload is compressed as a whole before encoding, so with any setting
// other than None the input is buffered in memory.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
	})
}

// WithBufferSize sets the logical copy chunk size for uncompressed conversions.
func WithBufferSize(size int) Option {
	return options.New(func(c *Config) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidBufferSize, size)
		}
		c.bufferSize = size

		return nil
	})
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger logging.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = logging.NopLogger{}
		}
		c.logger = logger
	})
}
