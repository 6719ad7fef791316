package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSONResponse(t *testing.T) {

	{
		out := &struct {
			Success int `json:"success"`
		}{}

		require.NoError(t,
			DecodeJSONResponse(strings.NewReader(`{"success":1}`), out))
		require.Equal(t, 1, out.Success)
	}

	{
		out := &struct{}{}
		err := DecodeJSONResponse(strings.NewReader(`<html>Bad gateway</html>`), out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "html")
	}
}

func TestRemoveSecretsFromJSON(t *testing.T) {

	for in, out := range map[string]string{
		``:                                      ``,
		`{}`:                                    `{}`,
		`{"to":"device-token"}`:                 `{"to":"*"}`,
		`{"to":""}`:                             `{"to":""}`,
		`{"to":"a \" b","priority":"high"}`:     `{"to":"*","priority":"*"}`,
		`{"data":{"k":"v"},"time_to_live":3}`:   `{"data":{"k":"*"},"time_to_live":3}`,
		`{"registration_ids":["t1","t2"]}`:      `{"registration_ids":["t1","t2"]}`,
		`{"notification":{"body":"hello you"}}`: `{"notification":{"body":"*"}}`,
	} {
		require.Equal(t, out, string(RemoveSecretsFromJSON([]byte(in))), in)
	}
}

func TestJSONWithoutSecrets(t *testing.T) {

	out, err := JSONWithoutSecrets(map[string]interface{}{
		"to":       "device-token",
		"priority": "high",
	})
	require.NoError(t, err)
	require.Equal(t, `{"priority":"*","to":"*"}`, string(out))
}
