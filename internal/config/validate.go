package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable for catalog operations.
// Remote-host credentials are validated separately by ValidateRemote since
// local-only invocations never open an SSH session.
func (c *Config) Validate() error {
	if err := c.validateMongo(); err != nil {
		return err
	}
	if err := c.validateTranscode(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// ValidateRemote ensures every credential the remote session needs is set.
func (c *Config) ValidateRemote() error {
	if c.SSH.Host == "" {
		return errors.New("ssh.host is required for remote processing (or export SSH_HOST)")
	}
	if c.SSH.Port <= 0 || c.SSH.Port > 65535 {
		return fmt.Errorf("ssh.port %d is out of range", c.SSH.Port)
	}
	if c.SSH.Username == "" {
		return errors.New("ssh.username is required for remote processing (or export SSH_USERNAME)")
	}
	if c.SSH.KeyPath == "" {
		return errors.New("ssh.key_path is required for remote processing (or export SSH_KEY_PATH)")
	}
	return nil
}

func (c *Config) validateMongo() error {
	if c.Mongo.URI == "" {
		return errors.New("mongo.uri is required (or export MONGO_URI)")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is required")
	}
	return nil
}

func (c *Config) validateTranscode() error {
	if c.Transcode.UploadDir[0] != '/' {
		return fmt.Errorf("transcode.upload_dir must be absolute, got %q", c.Transcode.UploadDir)
	}
	if c.Transcode.OutputDir[0] != '/' {
		return fmt.Errorf("transcode.output_dir must be absolute, got %q", c.Transcode.OutputDir)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
