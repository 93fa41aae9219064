package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMongo()
	if err := c.normalizeSSH(); err != nil {
		return err
	}
	c.normalizeTranscode()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMongo() {
	if strings.TrimSpace(c.Mongo.URI) == "" || c.Mongo.URI == defaultMongoURI {
		if value, ok := os.LookupEnv("MONGO_URI"); ok && strings.TrimSpace(value) != "" {
			c.Mongo.URI = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Mongo.Database) == "" {
		c.Mongo.Database = defaultMongoDatabase
	}
	if strings.TrimSpace(c.Mongo.MoviesCollection) == "" {
		c.Mongo.MoviesCollection = defaultMoviesCollection
	}
	if strings.TrimSpace(c.Mongo.SeriesCollection) == "" {
		c.Mongo.SeriesCollection = defaultSeriesCollection
	}
	if c.Mongo.ConnectTimeout <= 0 {
		c.Mongo.ConnectTimeout = defaultConnectTimeout
	}
}

// normalizeSSH applies the environment fallbacks the original deployment
// surface used: SSH_HOST, SSH_PORT, SSH_USERNAME, SSH_KEY_PATH.
func (c *Config) normalizeSSH() error {
	if c.SSH.Host == "" {
		if value, ok := os.LookupEnv("SSH_HOST"); ok {
			c.SSH.Host = strings.TrimSpace(value)
		}
	}
	if c.SSH.Username == "" {
		if value, ok := os.LookupEnv("SSH_USERNAME"); ok {
			c.SSH.Username = strings.TrimSpace(value)
		}
	}
	if c.SSH.KeyPath == "" {
		if value, ok := os.LookupEnv("SSH_KEY_PATH"); ok {
			c.SSH.KeyPath = strings.TrimSpace(value)
		}
	}
	if value, ok := os.LookupEnv("SSH_PORT"); ok && c.SSH.Port == defaultSSHPort {
		port, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("SSH_PORT: %w", err)
		}
		c.SSH.Port = port
	}
	if c.SSH.KeyPath != "" {
		expanded, err := expandPath(c.SSH.KeyPath)
		if err != nil {
			return fmt.Errorf("ssh.key_path: %w", err)
		}
		c.SSH.KeyPath = expanded
	}
	if c.SSH.DialTimeout <= 0 {
		c.SSH.DialTimeout = defaultDialTimeout
	}
	return nil
}

func (c *Config) normalizeTranscode() {
	c.Transcode.UploadDir = strings.TrimSpace(c.Transcode.UploadDir)
	if c.Transcode.UploadDir == "" {
		c.Transcode.UploadDir = defaultUploadDir
	}
	c.Transcode.OutputDir = strings.TrimSpace(c.Transcode.OutputDir)
	if c.Transcode.OutputDir == "" {
		c.Transcode.OutputDir = defaultOutputDir
	}
	if c.Transcode.SegmentSeconds <= 0 {
		c.Transcode.SegmentSeconds = defaultSegmentSeconds
	}
	if c.Transcode.ThumbnailQuality <= 0 {
		c.Transcode.ThumbnailQuality = defaultThumbnailQuality
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
