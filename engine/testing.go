package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/status"
)

// NewTestContext creates a Context over an empty world for tests
// Intents go to the returned RecordingHost; logs are discarded at trace level so log paths execute
// A nil rnd selects a FastRand seeded with 1
func NewTestContext(rnd Rand) (*Context, *RecordingHost) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.TraceLevel)

	host := &RecordingHost{}
	ctx := NewContext(NewWorld(), rnd, host, logrus.NewEntry(logger), status.NewRegistry())
	return ctx, host
}
