package core_test

import (
	"testing"

	"github.com/jianghu-sim/battlecore/core"
)

// sampleEntity is a test implementation of the Entity interface.
type sampleEntity struct {
	id         string
	entityType string
}

func (s *sampleEntity) GetID() string {
	return s.id
}

func (s *sampleEntity) GetType() string {
	return s.entityType
}

func TestEntity_Implementation(t *testing.T) {
	tests := []struct {
		name         string
		entity       *sampleEntity
		expectedID   string
		expectedType string
	}{
		{
			name: "combatant entity",
			entity: &sampleEntity{
				id:         "bandit-001",
				entityType: "combatant",
			},
			expectedID:   "bandit-001",
			expectedType: "combatant",
		},
		{
			name: "skill entity",
			entity: &sampleEntity{
				id:         "basic_strike",
				entityType: "skill",
			},
			expectedID:   "basic_strike",
			expectedType: "skill",
		},
		{
			name: "faction entity",
			entity: &sampleEntity{
				id:         "blackwind-fort",
				entityType: "faction",
			},
			expectedID:   "blackwind-fort",
			expectedType: "faction",
		},
		{
			name: "empty values",
			entity: &sampleEntity{
				id:         "",
				entityType: "",
			},
			expectedID:   "",
			expectedType: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Verify the entity implements the interface
			var _ core.Entity = tt.entity

			// Test GetID
			if got := tt.entity.GetID(); got != tt.expectedID {
				t.Errorf("GetID() = %v, want %v", got, tt.expectedID)
			}

			// Test GetType
			if got := tt.entity.GetType(); got != tt.expectedType {
				t.Errorf("GetType() = %v, want %v", got, tt.expectedType)
			}
		})
	}
}

// TestEntity_InterfaceCompliance ensures various entity types can implement the interface.
func TestEntity_InterfaceCompliance(t *testing.T) {
	// Define different entity types that should implement the interface
	type fighter struct {
		sampleEntity
		name    string
		agility int
	}

	type skill struct {
		sampleEntity
		name    string
		maxTier int
	}

	type faction struct {
		sampleEntity
		name string
	}

	// Create instances
	f := &fighter{
		sampleEntity: sampleEntity{id: "hero-123", entityType: "combatant"},
		name:         "Wandering Swordsman",
		agility:      10,
	}

	sk := &skill{
		sampleEntity: sampleEntity{id: "cloud_step", entityType: "skill"},
		name:         "Cloud Step",
		maxTier:      3,
	}

	fa := &faction{
		sampleEntity: sampleEntity{id: "blackwind-fort", entityType: "faction"},
		name:         "Blackwind Fort",
	}

	// Verify they all implement Entity
	entities := []core.Entity{f, sk, fa}

	for i, entity := range entities {
		if entity.GetID() == "" {
			t.Errorf("Entity %d has empty ID", i)
		}
		if entity.GetType() == "" {
			t.Errorf("Entity %d has empty type", i)
		}
	}
}

// TestEntity_NilHandling tests how implementations might handle nil scenarios.
func TestEntity_NilHandling(t *testing.T) {
	var entity *sampleEntity

	// This would panic if called on nil, demonstrating the importance of nil checks
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic when calling methods on nil entity")
		}
	}()

	// This should panic
	_ = entity.GetID()
}
