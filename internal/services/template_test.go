package services

import (
	"reflect"
	"testing"

	"github.com/nmakarov/levelup/internal/models"
)

func TestMergeTemplateWithoutPersistedRecord(t *testing.T) {
	template := DefaultTemplate()

	merged := MergeTemplate(template, nil)

	if len(merged.Tasks) != len(template) {
		t.Fatalf("expected %d tasks, got %d", len(template), len(merged.Tasks))
	}
	for name, state := range merged.Tasks {
		if state.Complete() && state.Kind == models.TaskKindBoolean {
			t.Fatalf("expected task %q at default state, got %#v", name, state)
		}
		if state.Kind == models.TaskKindCounted && state.Current != 0 {
			t.Fatalf("expected task %q at zero progress, got %d", name, state.Current)
		}
	}
	if len(merged.CustomTasks) != 0 {
		t.Fatalf("expected empty custom task list, got %d entries", len(merged.CustomTasks))
	}
}

func TestMergeTemplatePersistedValuesWin(t *testing.T) {
	template := map[string]models.TaskState{
		"100 Push-ups": models.CountedTask(0, 100),
		"Draw":         models.BooleanTask(false),
		"Writing":      models.BooleanTask(false),
	}
	persisted := models.DayRecord{
		Tasks: map[string]models.TaskState{
			"100 Push-ups": models.CountedTask(62, 100),
			"Draw":         models.BooleanTask(true),
		},
		CustomTasks: []models.CustomTask{{ID: "ct-1", Name: "Stretch", Done: true}},
	}

	merged := MergeTemplate(template, &persisted)

	if got := merged.Tasks["100 Push-ups"]; got.Current != 62 {
		t.Fatalf("expected persisted progress kept, got %#v", got)
	}
	if got := merged.Tasks["Draw"]; !got.Done {
		t.Fatalf("expected persisted done state kept, got %#v", got)
	}
	if got, exists := merged.Tasks["Writing"]; !exists || got.Done {
		t.Fatalf("expected new template task introduced at default, got %#v", got)
	}
	if len(merged.CustomTasks) != 1 || merged.CustomTasks[0].Name != "Stretch" {
		t.Fatalf("expected custom tasks taken from persisted record, got %#v", merged.CustomTasks)
	}
}

func TestMergeTemplateKeepsLegacyTasks(t *testing.T) {
	template := map[string]models.TaskState{
		"Draw": models.BooleanTask(false),
	}
	persisted := models.DayRecord{
		Tasks: map[string]models.TaskState{
			"Meditate 5 min": models.BooleanTask(true),
		},
	}

	merged := MergeTemplate(template, &persisted)

	if got, exists := merged.Tasks["Meditate 5 min"]; !exists || !got.Done {
		t.Fatalf("expected legacy task preserved as-is, got %#v", got)
	}
}

func TestMergeTemplateDoesNotCoerceShapeMismatch(t *testing.T) {
	template := map[string]models.TaskState{
		"Read 15 min": models.CountedTask(0, 15),
	}
	persisted := models.DayRecord{
		Tasks: map[string]models.TaskState{
			"Read 15 min": models.BooleanTask(true),
		},
	}

	merged := MergeTemplate(template, &persisted)

	if got := merged.Tasks["Read 15 min"]; got.Kind != models.TaskKindBoolean || !got.Done {
		t.Fatalf("expected persisted boolean to win over counted template, got %#v", got)
	}
}

func TestMergeTemplateIsIdempotentAndPure(t *testing.T) {
	template := DefaultTemplate()
	persisted := models.DayRecord{
		Tasks: map[string]models.TaskState{
			"100 Push-ups": models.CountedTask(40, 100),
			"Draw":         models.BooleanTask(true),
		},
		CustomTasks: []models.CustomTask{{ID: "ct-1", Name: "Stretch"}},
	}

	once := MergeTemplate(template, &persisted)
	twice := MergeTemplate(template, &once)

	if !reflect.DeepEqual(once.Tasks, twice.Tasks) {
		t.Fatalf("merge not idempotent: %#v vs %#v", once.Tasks, twice.Tasks)
	}
	if !reflect.DeepEqual(once.CustomTasks, twice.CustomTasks) {
		t.Fatalf("merge not idempotent for custom tasks: %#v vs %#v", once.CustomTasks, twice.CustomTasks)
	}

	if len(persisted.Tasks) != 2 {
		t.Fatalf("merge mutated its input, got %#v", persisted.Tasks)
	}
	once.Tasks["Draw"] = models.BooleanTask(false)
	if !persisted.Tasks["Draw"].Done {
		t.Fatal("merged record shares task map with input")
	}
}
