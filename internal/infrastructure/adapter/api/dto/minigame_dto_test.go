package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    Amount
		wantErr bool
	}{
		{`"1.50"`, "1.50", false},
		{`1.5`, "1.5", false},
		{`0`, "0", false},
		{`null`, "", false},
		{`"abc"`, "abc", false}, // validated later by the domain
		{`true`, "", true},
		{`{}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.raw), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestRecordResultRequest_PlayDuration(t *testing.T) {
	var req RecordResultRequest
	require.NoError(t, json.Unmarshal([]byte(`{"gameId":"dog-catcher","userId":1,"score":3,"duration":12.25}`), &req))

	assert.Equal(t, 12250*time.Millisecond, req.PlayDuration())
	require.NotNil(t, req.Score)
	assert.Equal(t, int64(3), *req.Score)
	assert.Equal(t, Amount(""), req.SCEarned)
}
