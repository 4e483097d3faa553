package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: L.(*logger).entry}

	same := base.WithFields(Fields{"irrelevante": 1})
	assert.Same(t, base, same)

	kept := base.WithFields(Fields{"records": 10, "irrelevante": 1}).(*logger)
	assert.Contains(t, kept.entry.Data, "records")
	assert.NotContains(t, kept.entry.Data, "irrelevante")
}

func TestWithFieldsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base := &logger{entry: L.(*logger).entry}
	kept := base.WithField("qualquer", "valor").(*logger)

	assert.Contains(t, kept.entry.Data, "qualquer")
}
