package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p MovePayload) Validate() error {
	switch p.Dir {
	case "LEFT", "RIGHT", "UP", "DOWN":
		return nil
	case "":
		return errors.New("dir is required")
	default:
		return errors.New("unknown direction symbol: " + p.Dir)
	}
}
