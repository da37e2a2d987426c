package gocoinex

import (
	"io/ioutil"
	"net/http"
	"strings"
)

// NewHttpRequest dispatches one HTTP request and returns the status code
// together with the raw body. Transport-level failures come back as
// *TransportError; status handling is left to the caller, who may still
// find a parseable exchange envelope in a non-2xx body.
func NewHttpRequest(
	client *http.Client,
	reqType,
	reqUrl,
	postData string,
	requestHeaders map[string]string,
) (int, []byte, error) {
	req, err := http.NewRequest(reqType, reqUrl, strings.NewReader(postData))
	if err != nil {
		return 0, nil, &TransportError{Message: err.Error(), Err: err}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set(
			"User-Agent",
			"Mozilla/5.0 (Windows NT 5.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/31.0.1650.63 Safari/537.36")
	}
	if requestHeaders != nil {
		for k, v := range requestHeaders {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Message: err.Error(), Err: err}
	}

	defer resp.Body.Close()

	bodyData, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    err.Error(),
			Err:        err,
		}
	}

	return resp.StatusCode, bodyData, nil
}
