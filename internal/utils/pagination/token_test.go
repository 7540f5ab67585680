package pagination_test

import (
	"testing"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiFieldTokenRoundTrip(t *testing.T) {
	token := pagination.EncodeMultiFieldToken("2024-05-01", "a1b2c3")

	fields, err := pagination.DecodeMultiFieldToken(token, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "a1b2c3"}, fields)
}

func TestDecodeMultiFieldToken_FieldCountMismatch(t *testing.T) {
	token := pagination.EncodeMultiFieldToken("only-one")

	_, err := pagination.DecodeMultiFieldToken(token, 2)
	assert.Error(t, err)
}

func TestDecodeMultiFieldToken_NotBase64(t *testing.T) {
	_, err := pagination.DecodeMultiFieldToken("!!not-base64!!", 1)
	assert.Error(t, err)
}

func TestDateBasedTokenRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	token := pagination.EncodeDateBasedToken(now)

	decoded, err := pagination.DecodeDateBasedToken(token)
	require.NoError(t, err)
	assert.True(t, now.Equal(decoded))
}

func TestDecodeDateBasedToken_Garbage(t *testing.T) {
	_, err := pagination.DecodeDateBasedToken("Z2FyYmFnZQ==") // "garbage"
	assert.Error(t, err)
}
