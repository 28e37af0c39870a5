package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weegigs/tally-go/tally"
)

type test = func(t *testing.T)

func TestDashboard(t *testing.T) {
	registry := tally.NewRegistry()

	container, err := NewCounterContainer(registry)
	if err != nil {
		t.Logf("Unexpected failure %+v", err)
		t.FailNow()
	}

	service := NewCounterService(container)

	header, closeHeader, err := NewHeader(registry)
	if err != nil {
		t.Logf("Unexpected failure %+v", err)
		t.FailNow()
	}
	defer closeHeader()

	panel, closePanel := NewPanel(service)
	defer closePanel()

	t.Run("should render zero before any changes", rendersZero(header))
	t.Run("should track increments from the panel", tracksIncrements(header, panel))
	t.Run("should floor decrements at zero", floorsDecrements(header, panel))
}

func rendersZero(header *Header) test {
	return func(t *testing.T) {
		assert.Equal(t, 0, header.Reading().Value)
		assert.Equal(t, "count: 0", header.Render())
	}
}

func tracksIncrements(header *Header, panel *Panel) test {
	return func(t *testing.T) {
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			assert.NoError(t, panel.Increment(ctx))
		}

		assert.Equal(t, 3, header.Reading().Value)
		assert.Equal(t, 3, panel.Reading().Value)
		assert.Equal(t, "count: 3", header.Render())
	}
}

func floorsDecrements(header *Header, panel *Panel) test {
	return func(t *testing.T) {
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			assert.NoError(t, panel.Decrement(ctx))
			assert.GreaterOrEqual(t, header.Reading().Value, 0)
		}

		assert.Equal(t, 0, header.Reading().Value)
		assert.Equal(t, "count: 0", header.Render())
	}
}

func TestHeaderRequiresAPublishedContainer(t *testing.T) {
	registry := tally.NewRegistry()

	_, _, err := NewHeader(registry)

	var uninitialized tally.UninitializedAccessError
	assert.ErrorAs(t, err, &uninitialized)
}

func TestOnlyOneContainerPerProcess(t *testing.T) {
	registry := tally.NewRegistry()

	_, err := NewCounterContainer(registry)
	assert.NoError(t, err)

	_, err = NewCounterContainer(registry)

	var published tally.AlreadyPublishedError
	assert.ErrorAs(t, err, &published)
}

func TestHeaderSeedsFromTheCurrentValue(t *testing.T) {
	registry := tally.NewRegistry()

	container, err := NewCounterContainer(registry)
	assert.NoError(t, err)

	ctx := context.Background()
	container.Increment(ctx)
	container.Increment(ctx)

	header, closeHeader, err := NewHeader(registry)
	assert.NoError(t, err)
	defer closeHeader()

	assert.Equal(t, 2, header.Reading().Value)
	assert.Equal(t, "count: 2", header.Render())
}
