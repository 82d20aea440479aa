package config

import (
	"errors"
	"fmt"
)

// Stick bend bounds in degrees
const (
	minStickAngle = 1.0
	maxStickAngle = 135.0
)

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if err := c.validateMachine(); err != nil {
		return err
	}
	if err := c.validatePiece(); err != nil {
		return err
	}
	if err := c.validateStick(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMachine() error {
	if err := c.DispenseConfig().Validate(); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	return nil
}

func (c *Config) validatePiece() error {
	if c.Piece.FallMillis <= 0 {
		return errors.New("piece.fall_ms must be positive")
	}
	if c.Piece.RotateMillis <= 0 {
		return errors.New("piece.rotate_ms must be positive")
	}
	if c.Piece.MaxPieces <= 0 {
		return errors.New("piece.max_pieces must be positive")
	}
	return nil
}

func (c *Config) validateStick() error {
	if !(c.Stick.Angle >= minStickAngle && c.Stick.Angle <= maxStickAngle) {
		return fmt.Errorf("stick.angle must be in [%v, %v], got %v", minStickAngle, maxStickAngle, c.Stick.Angle)
	}
	if c.Stick.ActivationMillis < 0 {
		return errors.New("stick.activation_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
