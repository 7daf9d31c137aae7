package model

import "time"

// WheelOrder names the left, middle and right wheels.
type WheelOrder [3]string

// Candidate is a rotor setting the bombe could not rule out.
type Candidate struct {
	Reflector string     `yaml:"reflector"`
	Wheels    WheelOrder `yaml:"wheels,flow"`
	Position  string     `yaml:"position"`
	Plugboard []string   `yaml:"plugboard,flow,omitempty"`
}

// Key identifies a candidate for set semantics.
func (c Candidate) Key() string {
	return c.Reflector + "/" + c.Wheels[0] + "-" + c.Wheels[1] + "-" + c.Wheels[2] + "/" + c.Position
}

// Report is the persisted outcome of one crack run.
type Report struct {
	ID              string       `yaml:"id"`
	CreatedAt       time.Time    `yaml:"created_at"`
	Crib            string       `yaml:"crib"`
	Ciphertext      string       `yaml:"ciphertext"`
	Offset          int          `yaml:"offset"`
	Reflector       string       `yaml:"reflector"`
	Orders          []WheelOrder `yaml:"orders,flow"`
	Start           string       `yaml:"start"`
	DiagonalBoard   bool         `yaml:"diagonal_board"`
	VerifyPlugboard bool         `yaml:"verify_plugboard"`
	ShardIndex      int          `yaml:"shard_index"`
	TotalShards     int          `yaml:"total_shards"`
	Tested          int          `yaml:"tested"`
	Complete        bool         `yaml:"complete"`
	Candidates      []Candidate  `yaml:"candidates"`
}

// Path represents a file system path.
type Path string
