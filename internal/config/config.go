// Package config defines the product configuration model: a tagged union
// over three product families (meuble, planche, cuisine) with their nested
// entities. The types are pure data; pricing, scene building, and the wizard
// reducer all dispatch on the family discriminant.
package config

import (
	"encoding/json"
	"fmt"
)

// Family discriminates the product configuration union.
type Family string

const (
	FamilyMeuble  Family = "meuble"
	FamilyPlanche Family = "planche"
	FamilyCuisine Family = "cuisine"
)

// Product is the closed configuration union. The three implementations are
// MeubleConfig, PlancheConfig, and CuisineConfig; consumers must switch on
// the concrete type (or Family) with a total default case.
type Product interface {
	Family() Family
	DisplayName() string
}

// Position is a 3D placement in mm. X is recomputed by layout
// normalization; Y and Z default to floor level.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// envelope is the serialization wrapper carrying the family discriminant
// next to the family payload, so a stored configuration round-trips to the
// right concrete type.
type envelope struct {
	Family Family          `json:"family"`
	Config json.RawMessage `json:"config"`
}

// Encode serializes a configuration with its family tag.
func Encode(p Product) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s config: %w", p.Family(), err)
	}
	return json.MarshalIndent(envelope{Family: p.Family(), Config: raw}, "", "  ")
}

// Decode deserializes a configuration produced by Encode.
func Decode(data []byte) (Product, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode config envelope: %w", err)
	}
	switch env.Family {
	case FamilyMeuble:
		var c MeubleConfig
		if err := json.Unmarshal(env.Config, &c); err != nil {
			return nil, fmt.Errorf("decode meuble config: %w", err)
		}
		c.NormalizeLayout()
		return &c, nil
	case FamilyPlanche:
		var c PlancheConfig
		if err := json.Unmarshal(env.Config, &c); err != nil {
			return nil, fmt.Errorf("decode planche config: %w", err)
		}
		return &c, nil
	case FamilyCuisine:
		var c CuisineConfig
		if err := json.Unmarshal(env.Config, &c); err != nil {
			return nil, fmt.Errorf("decode cuisine config: %w", err)
		}
		c.NormalizePlacements()
		return &c, nil
	default:
		return nil, fmt.Errorf("unknown product family %q", env.Family)
	}
}

// DefaultFor returns the default configuration for a family. Unknown
// families fall back to the default meuble.
func DefaultFor(f Family) Product {
	switch f {
	case FamilyPlanche:
		return DefaultPlanche()
	case FamilyCuisine:
		return DefaultCuisine()
	default:
		return DefaultMeuble()
	}
}
