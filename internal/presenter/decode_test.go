package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDishes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "dishes", body: twoDishes, want: 2},
		{name: "empty array", body: `{"dishes":[]}`, want: 0},
		{name: "missing field", body: `{}`, want: 0},
		{name: "null field", body: `{"dishes":null}`, want: 0},
		{name: "object field", body: `{"dishes":{"name":"x"}}`, want: 0},
		{name: "not json", body: `oops`, wantErr: true},
		{name: "loose numbers", body: `{"dishes":[{"name":"A","calories":"many","macros":{"fat_g":"3g"}}]}`, want: 1},
		{name: "bad entries skipped", body: `{"dishes":[{"name":1},"x",null,{"name":"B"}]}`, want: 1},
		{name: "truncated array", body: `{"dishes":[{"name":"A"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes, err := DecodeDishes([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, dishes)
			assert.Len(t, dishes, tt.want)
		})
	}
}
