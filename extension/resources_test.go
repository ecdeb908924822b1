package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWorker implements ResourceWorker and rewrites every path it sees
type recordingWorker struct {
	seen    []string
	rewrite string
}

func (w *recordingWorker) ExposeResource(resourcePath string) string {
	w.seen = append(w.seen, resourcePath)
	if w.rewrite != "" {
		return w.rewrite
	}
	return resourcePath
}

func TestExposeResources_DefaultNoOp(t *testing.T) {
	ext := newTestExtension()
	worker := &recordingWorker{}
	instruction := &Instruction{Type: "Physics::PlaySound", Parameters: []string{"boom.wav"}}

	// No hook set: nothing happens, nothing panics
	ext.ExposeConditionsResources(instruction, worker)
	ext.ExposeActionsResources(instruction, worker)

	assert.Empty(t, worker.seen)
	assert.Equal(t, []string{"boom.wav"}, instruction.Parameters)
}

func TestExposeActionsResources_RewritesParameters(t *testing.T) {
	ext := newTestExtension()
	ext.SetActionsResourceExposer(func(instruction *Instruction, worker ResourceWorker) {
		// This extension stores a file path in the first parameter of its
		// sound actions
		if len(instruction.Parameters) > 0 {
			instruction.Parameters[0] = worker.ExposeResource(instruction.Parameters[0])
		}
	})

	worker := &recordingWorker{rewrite: "assets/boom.wav"}
	instruction := &Instruction{Type: "Physics::PlaySound", Parameters: []string{"boom.wav"}}

	ext.ExposeActionsResources(instruction, worker)

	require.Equal(t, []string{"boom.wav"}, worker.seen)
	assert.Equal(t, "assets/boom.wav", instruction.Parameters[0])
}

func TestExposeConditionsResources_UsesConditionHook(t *testing.T) {
	ext := newTestExtension()

	conditionCalls := 0
	ext.SetConditionsResourceExposer(func(*Instruction, ResourceWorker) {
		conditionCalls++
	})

	instruction := &Instruction{Type: "Physics::IsPlaying"}
	ext.ExposeConditionsResources(instruction, &recordingWorker{})
	ext.ExposeActionsResources(instruction, &recordingWorker{})

	// The action hook was never set; only the condition hook ran
	assert.Equal(t, 1, conditionCalls)
}
