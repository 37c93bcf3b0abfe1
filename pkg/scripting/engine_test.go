package scripting

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/menta2k/document-recognizer/pkg/recognizer"
	"github.com/menta2k/document-recognizer/pkg/recognizers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildResults(t *testing.T) []recognizer.Result {
	t.Helper()

	c, err := recognizer.NewCollection(recognizers.NewAustriaPassportRecognizer(), recognizers.NewSwitzerlandIDFrontRecognizer())
	require.NoError(t, err)

	results, err := c.BuildResults([]json.RawMessage{
		json.RawMessage(`{"resultState": 3, "givenName": "ANNA", "dateOfBirth": {"day": 1, "month": 1, "year": 1990}}`),
		json.RawMessage(`{"resultState": 1}`),
	})
	require.NoError(t, err)

	return results
}

func TestExecuteResults(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.RegisterResults(buildResults(t)))

	value, err := engine.Execute(context.Background(), "results.length")
	require.NoError(t, err)
	assert.EqualValues(t, 2, value)

	value, err = engine.Execute(context.Background(), "results[0].givenName")
	require.NoError(t, err)
	assert.Equal(t, "ANNA", value)

	value, err = engine.Execute(context.Background(), "results[0].dateOfBirth.year")
	require.NoError(t, err)
	assert.EqualValues(t, 1990, value)

	value, err = engine.Execute(context.Background(), "results[0].mrzResult === null && results[1].dateOfBirth === null")
	require.NoError(t, err)
	assert.Equal(t, true, value)

	value, err = engine.Execute(context.Background(), "results.map(r => r.resultState).join(',')")
	require.NoError(t, err)
	assert.Equal(t, "3,1", value)
}

func TestExecuteEmpty(t *testing.T) {
	engine := NewEngine()

	value, err := engine.Execute(context.Background(), "results.length")
	require.NoError(t, err)
	assert.EqualValues(t, 0, value)
}

func TestExecuteSyntaxError(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Execute(context.Background(), "results[")
	require.Error(t, err)
}

func TestExecuteContextCancellation(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	_, err := engine.Execute(ctx, "while (true) {}")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	value, err := engine.Execute(context.Background(), "1 + 1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, value)
}

func TestExecuteReuseAfterLateCancel(t *testing.T) {
	engine := NewEngine()

	for i := 0; i < 200; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		go cancel()

		_, _ = engine.Execute(ctx, "(function () { var n = 0; for (var i = 0; i < 1000; i++) { n += i } return n })()")

		value, err := engine.Execute(context.Background(), "1 + 1")
		require.NoError(t, err, "iteration %d", i)
		assert.EqualValues(t, 2, value)
	}
}

func TestExecuteImmediateCancel(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Execute(ctx, "42")
	require.ErrorIs(t, err, context.Canceled)
}
