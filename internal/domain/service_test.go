package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRegistry struct {
	catalog       map[string]Activity
	signUpErr     error
	unregisterErr error
	signUps       [][2]string
	unregisters   [][2]string
}

func (s *stubRegistry) Snapshot(ctx context.Context) (map[string]Activity, error) {
	return s.catalog, nil
}

func (s *stubRegistry) SignUp(ctx context.Context, activity, email string) error {
	s.signUps = append(s.signUps, [2]string{activity, email})
	return s.signUpErr
}

func (s *stubRegistry) Unregister(ctx context.Context, activity, email string) error {
	s.unregisters = append(s.unregisters, [2]string{activity, email})
	return s.unregisterErr
}

func TestSignUpMessage(t *testing.T) {
	reg := &stubRegistry{}
	service := NewService(reg)

	message, err := service.SignUp(context.Background(), "Basketball Team", "netstudent@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Signed up netstudent@mergington.edu for Basketball Team", message)
	require.Equal(t, [][2]string{{"Basketball Team", "netstudent@mergington.edu"}}, reg.signUps)
}

func TestSignUpPropagatesRegistryError(t *testing.T) {
	reg := &stubRegistry{signUpErr: ErrAlreadyRegistered}
	service := NewService(reg)

	message, err := service.SignUp(context.Background(), "Basketball Team", "alex@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	require.Empty(t, message)
}

func TestUnregisterMessage(t *testing.T) {
	reg := &stubRegistry{}
	service := NewService(reg)

	message, err := service.Unregister(context.Background(), "Drama Club", "grace@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Unregistered grace@mergington.edu from Drama Club", message)
	require.Equal(t, [][2]string{{"Drama Club", "grace@mergington.edu"}}, reg.unregisters)
}

func TestUnregisterPropagatesRegistryError(t *testing.T) {
	reg := &stubRegistry{unregisterErr: ErrNotRegistered}
	service := NewService(reg)

	message, err := service.Unregister(context.Background(), "Drama Club", "stranger@mergington.edu")
	require.ErrorIs(t, err, ErrNotRegistered)
	require.Empty(t, message)
}

func TestListActivitiesReturnsSnapshot(t *testing.T) {
	catalog := map[string]Activity{"Chess Club": {MaxParticipants: 12}}
	service := NewService(&stubRegistry{catalog: catalog})

	got, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	require.Equal(t, catalog, got)
}

func TestDefaultActivities(t *testing.T) {
	catalog := DefaultActivities()
	require.Len(t, catalog, 9)

	for _, name := range []string{
		"Basketball Team", "Soccer Club", "Drama Club", "Art Studio",
		"Debate Team", "Math Club", "Chess Club", "Programming Class", "Gym Class",
	} {
		activity, ok := catalog[name]
		require.True(t, ok, "missing seed activity %s", name)
		require.NotEmpty(t, activity.Description)
		require.NotEmpty(t, activity.Schedule)
		require.Positive(t, activity.MaxParticipants)
		require.NotNil(t, activity.Participants)
	}

	require.Equal(t, []string{"alex@mergington.edu"}, catalog["Basketball Team"].Participants)
}

func TestActivityClone(t *testing.T) {
	original := Activity{Participants: []string{"a@mergington.edu"}}
	clone := original.Clone()
	clone.Participants[0] = "b@mergington.edu"

	require.Equal(t, "a@mergington.edu", original.Participants[0])
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	payload := `{
		"Robotics Lab": {
			"description": "Build and program robots",
			"schedule": "Tuesdays, 3:30 PM - 5:00 PM",
			"max_participants": 10,
			"participants": ["casey@mergington.edu"]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	catalog, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Equal(t, Activity{
		Description:     "Build and program robots",
		Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 10,
		Participants:    []string{"casey@mergington.edu"},
	}, catalog["Robotics Lab"])
}

func TestLoadSeedFileErrors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	_, err = LoadSeedFile(path)
	require.Error(t, err)

	path = filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))
	_, err = LoadSeedFile(path)
	require.Error(t, err)
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrAlreadyRegistered, ErrNotRegistered))
	require.False(t, errors.Is(ErrActivityNotFound, ErrAlreadyRegistered))
}
