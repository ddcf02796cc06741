package submission

import (
	// Go Internal Packages
	"context"
	"testing"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	posted []models.Payload
	err    error
}

func (f *fakeBackend) PostTransaction(_ context.Context, payload *models.Payload) (*models.SubmissionResult, error) {
	f.posted = append(f.posted, payload.Clone())
	if f.err != nil {
		return nil, f.err
	}
	return &models.SubmissionResult{Status: 201, Message: "created"}, nil
}

func TestSelect_KnownMethods(t *testing.T) {
	for _, method := range []models.TransactionMethod{
		models.TransactionMethodManually,
		models.TransactionMethodReader,
		models.TransactionMethodCash,
	} {
		s, err := Select(method, &fakeBackend{}, zap.NewNop())
		require.NoError(t, err, method)
		assert.Equal(t, method, s.Method)
	}
}

func TestSelect_UnsupportedMethod(t *testing.T) {
	s, err := Select(models.TransactionMethod("terminal"), &fakeBackend{}, zap.NewNop())
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedMethod))
	assert.Equal(t, "Unsupported transaction method: terminal", err.Error())
}

func TestSubmit_PostsPayload(t *testing.T) {
	backend := &fakeBackend{}
	s, err := Select(models.TransactionMethodCash, backend, zap.NewNop())
	require.NoError(t, err)

	payload := models.NewPayload()
	payload.AmountInCents = models.Cents(500)
	payload.ReferenceID = "ref-1"

	require.NoError(t, s.Submit(context.Background(), &payload))
	require.Len(t, backend.posted, 1)
	assert.Equal(t, "ref-1", backend.posted[0].ReferenceID)
	assert.True(t, backend.posted[0].AmountInCents.Equal(models.Cents(500)))
}

func TestSubmit_ReturnsBackendErrorUnchanged(t *testing.T) {
	backendErr := errors.SubmissionErr(402, "Card declined", map[string]string{"code": "declined"}, nil)
	s, err := Select(models.TransactionMethodReader, &fakeBackend{err: backendErr}, zap.NewNop())
	require.NoError(t, err)

	payload := models.NewPayload()
	err = s.Submit(context.Background(), &payload)
	assert.Same(t, backendErr, err)
}
