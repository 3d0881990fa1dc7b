package startup

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDependency struct {
	name      string
	dependsOn []string
	startErr  error
	events    *[]string
}

func (f *fakeDependency) GetName() string     { return f.name }
func (f *fakeDependency) DependsOn() []string { return f.dependsOn }

func (f *fakeDependency) Start(_ context.Context) error {
	*f.events = append(*f.events, "start:"+f.name)
	return f.startErr
}

func (f *fakeDependency) Stop(_ context.Context) error {
	*f.events = append(*f.events, "stop:"+f.name)
	return nil
}

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestStartup_StartsInDependencyOrder(t *testing.T) {
	var events []string
	s := NewStartup(testLogger(), 1)
	s.AddDependency(&fakeDependency{name: "server", dependsOn: []string{"database"}, events: &events})
	s.AddDependency(&fakeDependency{name: "database", events: &events})

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, []string{"start:database", "start:server"}, events)
}

func TestStartup_StopsInReverseOrder(t *testing.T) {
	var events []string
	s := NewStartup(testLogger(), 1)
	s.AddDependency(&fakeDependency{name: "database", events: &events})
	s.AddDependency(&fakeDependency{name: "server", dependsOn: []string{"database"}, events: &events})

	require.NoError(t, s.Start(context.Background()))
	events = events[:0]

	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, []string{"stop:server", "stop:database"}, events)
}

func TestStartup_FailureExhaustsAttempts(t *testing.T) {
	var events []string
	s := NewStartup(testLogger(), 1)
	s.AddDependency(&fakeDependency{name: "database", startErr: errors.New("refused"), events: &events})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startup failed after 1 attempts")
}
