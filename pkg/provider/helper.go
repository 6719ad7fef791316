// Package provider holds helpers shared by push provider clients.
package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// MaxErrorBody limits how much of a server answer ends up in an error
// message.
const MaxErrorBody = 2000

// DecodeJSONResponse unmarshals a response in json format to the object.
// If the server returns invalid json data, the response body itself
// becomes the error text.
func DecodeJSONResponse(r io.Reader, retval interface{}) error {

	decoder := json.NewDecoder(r)

	err := decoder.Decode(retval)
	if err == nil {
		return nil
	}

	if _, ok := err.(*json.SyntaxError); ok {
		errInfo := bytes.NewBuffer(nil)
		if _, errCopy := io.Copy(errInfo, decoder.Buffered()); errCopy != nil {
			return err
		}

		if errInfo.Len() > MaxErrorBody {
			errInfo.Truncate(MaxErrorBody)
		}

		return errors.New(errInfo.String())
	}

	return err
}

// JSONWithoutSecrets encodes the object and masks every string value.
// Payloads carry device tokens and keys, so they never reach logs or
// error messages unmasked.
func JSONWithoutSecrets(obj interface{}) ([]byte, error) {

	out, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	return RemoveSecretsFromJSON(out), nil
}

var secretBegin = []byte(`:"`)

// RemoveSecretsFromJSON replaces every non-empty string value in the
// encoded json with a '*' mask.
func RemoveSecretsFromJSON(in []byte) []byte {

	if len(in) == 0 {
		return in
	}

	buf := bytes.NewBuffer(nil)
	for {
		pos := bytes.Index(in, secretBegin)
		if pos == -1 {
			break
		}

		secretStart := pos + len(secretBegin)
		buf.Write(in[:secretStart])
		in = in[secretStart:]

		secretEnd := -1
		for i := 0; i < len(in); i++ {
			if in[i] == '"' && (i == 0 || in[i-1] != '\\') {
				secretEnd = i
				break
			}
		}

		if secretEnd > -1 {
			if secretEnd > 0 { // keep empty strings unmasked
				buf.WriteByte('*')
			}
			in = in[secretEnd:]
		}
	}

	buf.Write(in)

	return buf.Bytes()
}
