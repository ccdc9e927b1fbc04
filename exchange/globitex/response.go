package globitex

import (
	"encoding/json"
	"net/http"
)

//
// Response implements the exchange.Response interface for wrapped responses from the Globitex
// API.
//
type Response struct {
	response *http.Response
	body     []byte
}

func (o *Response) Raw() *http.Response {
	return o.response
}

func (o *Response) Body() []byte {
	return o.body
}

//
// decode unmarshals the response body into the provided envelope structure. Malformed JSON
// propagates as the json package's own error – the transport layer makes no attempt to dress it
// up.
//
func (o *Response) decode(v interface{}) error {
	return json.Unmarshal(o.body, v)
}
