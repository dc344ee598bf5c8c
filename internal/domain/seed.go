package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultActivities returns the built-in activity catalog loaded at startup.
// Callers receive a fresh map on every call and may mutate it freely.
func DefaultActivities() map[string]Activity {
	return map[string]Activity{
		"Basketball Team": {
			Description:     "Join the school basketball team and compete in leagues",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Play soccer and develop athletic skills",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"james@mergington.edu", "jessica@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"grace@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Create visual art including painting, drawing, and sculpture",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"isabella@mergington.edu", "noah@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Compete in debate competitions and develop argumentation skills",
			Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"william@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging math problems and prepare for competitions",
			Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"ryan@mergington.edu", "ava@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

type seedRecord struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// LoadSeedFile reads an activity catalog from a JSON file keyed by activity
// name, in the same shape the list endpoint serves.
func LoadSeedFile(path string) (map[string]Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records map[string]seedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("seed file contains no activities")
	}

	out := make(map[string]Activity, len(records))
	for name, record := range records {
		out[name] = Activity{
			Description:     record.Description,
			Schedule:        record.Schedule,
			MaxParticipants: record.MaxParticipants,
			Participants:    record.Participants,
		}
	}
	return out, nil
}
