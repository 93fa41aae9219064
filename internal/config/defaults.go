package config

const (
	defaultLogDir           = "~/.local/share/hlsmill/logs"
	defaultMongoURI         = "mongodb://127.0.0.1:27017"
	defaultMongoDatabase    = "hlsmill"
	defaultMoviesCollection = "movies"
	defaultSeriesCollection = "series"
	defaultConnectTimeout   = 10
	defaultSSHPort          = 22
	defaultDialTimeout      = 15
	defaultUploadDir        = "/var/www/uploads"
	defaultOutputDir        = "/var/www/hls"
	defaultSegmentSeconds   = 10
	defaultThumbnailQuality = 2
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Mongo: Mongo{
			URI:              defaultMongoURI,
			Database:         defaultMongoDatabase,
			MoviesCollection: defaultMoviesCollection,
			SeriesCollection: defaultSeriesCollection,
			ConnectTimeout:   defaultConnectTimeout,
		},
		SSH: SSH{
			Port:        defaultSSHPort,
			DialTimeout: defaultDialTimeout,
		},
		Transcode: Transcode{
			UploadDir:        defaultUploadDir,
			OutputDir:        defaultOutputDir,
			SegmentSeconds:   defaultSegmentSeconds,
			ThumbnailQuality: defaultThumbnailQuality,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
