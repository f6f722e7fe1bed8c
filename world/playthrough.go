package world

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of a Playthrough.
// If serializing a Playthrough produces different bytes than before, for
// example because PlayerInput got a new field, InputVersion must change.
const InputVersion = 1

// SimulationVersion identifies the rules of the World. Any change to World
// that makes an old playthrough produce different states must bump it.
const SimulationVersion = 1

var (
	ErrInputVersion      = errors.New("unsupported playthrough input version")
	ErrSimulationVersion = errors.New("unsupported playthrough simulation version")
)

// Playthrough is all the input a World received during a session. Given
// the same Config, Seed and History, a World goes through the exact same
// states, which is what replays and regression ids rely on.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	Id                uuid.UUID
	Seed              int64
	Config            Config
	History           []PlayerInput
}

func NewPlaythrough(c Config, seed int64) Playthrough {
	return Playthrough{
		InputVersion:      InputVersion,
		SimulationVersion: SimulationVersion,
		Id:                uuid.New(),
		Seed:              seed,
		Config:            c,
	}
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	// The config has a string in it, so it goes in as YAML instead of raw
	// fixed-size fields.
	configBytes, err := yaml.Marshal(p.Config)
	if err != nil {
		panic(fmt.Errorf("serializing playthrough config: %w", err))
	}
	SerializeSlice(buf, configBytes)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return p, err
	}
	buf := bytes.NewBuffer(raw)
	if err = Deserialize(buf, &p.InputVersion); err != nil {
		return
	}
	if p.InputVersion != InputVersion {
		return p, fmt.Errorf("%w: we are at InputVersion %d and the "+
			"playthrough was generated with InputVersion %d",
			ErrInputVersion, InputVersion, p.InputVersion)
	}
	if err = Deserialize(buf, &p.SimulationVersion); err != nil {
		return
	}
	if err = Deserialize(buf, &p.Id); err != nil {
		return
	}
	if err = Deserialize(buf, &p.Seed); err != nil {
		return
	}
	var configBytes []byte
	if err = DeserializeSlice(buf, &configBytes); err != nil {
		return
	}
	if p.Config, err = ParseConfig(configBytes); err != nil {
		return
	}
	err = DeserializeSlice(buf, &p.History)
	return
}

// NewWorldFromPlaythrough creates the World a playthrough started from.
func NewWorldFromPlaythrough(p Playthrough) (*World, error) {
	if p.SimulationVersion != SimulationVersion {
		return nil, fmt.Errorf("%w: we are at SimulationVersion %d and the "+
			"playthrough was generated with SimulationVersion %d",
			ErrSimulationVersion, SimulationVersion, p.SimulationVersion)
	}
	return NewWorld(p.Config, p.Seed)
}
