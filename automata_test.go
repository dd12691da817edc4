package automata_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automatalab/automata"
	"github.com/automatalab/automata/pkg/domain"
	"github.com/automatalab/automata/pkg/registry"
)

func TestEngine_DefaultMachines(t *testing.T) {
	eng := automata.New()

	names, err := eng.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "ab"}, names)
}

func TestEngine_Simulate(t *testing.T) {
	eng := automata.New()

	res, err := eng.Simulate("ab", "ba")
	require.NoError(t, err)
	require.Len(t, res.Trace, 3)
	assert.Equal(t, "0", res.Trace[0].State)
	assert.Equal(t, "1", res.Trace[1].State)
	assert.False(t, res.Accepted)
}

func TestEngine_LogsWarningsOncePerMachine(t *testing.T) {
	var buf bytes.Buffer
	eng := automata.New(automata.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	// The stock ab table carries three duplicate rules; resolving the
	// machine repeatedly must not re-log them.
	for i := 0; i < 3; i++ {
		_, err := eng.Simulate("ab", "ba")
		require.NoError(t, err)
	}

	logged := strings.Count(buf.String(), "ambiguous transition table")
	assert.Equal(t, 3, logged, "one log line per duplicate rule, emitted once")
}

func TestEngine_UnknownMachine(t *testing.T) {
	eng := automata.New()

	_, err := eng.Simulate("pda", "aabb")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEngine_CustomLoader(t *testing.T) {
	reg := registry.New()
	def := &domain.Definition{
		Name:     "single",
		States:   []string{"s", "t"},
		Alphabet: []string{"z"},
		Start:    "s",
		Accept:   []string{"t"},
		Rules:    []domain.Rule{{From: "s", On: "z", To: "t"}},
	}
	require.NoError(t, reg.Register(def))

	eng := automata.New(automata.WithLoader(reg))

	res, err := eng.Simulate("single", "z")
	require.NoError(t, err)
	assert.True(t, res.Accepted)

	_, err = eng.Simulate("ab", "a")
	assert.Error(t, err, "builtin machines are not visible through a custom loader")
}
