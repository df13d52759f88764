// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_goalverse/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRequest はテスト用のHTTPリクエストを組み立てます。
// userID が nil の場合は X-User-ID ヘッダーを付けない (認証なしのケース)。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBodyReader io.Reader
	if body != nil {
		if strPayload, ok := body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req := httptest.NewRequest(method, url, reqBodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// createMultipartRequest は動画アップロード用の multipart/form-data リクエストを
// 組み立てます。filename が空の場合はファイルパートを付けない。
func createMultipartRequest(t *testing.T, url string, fields map[string]string, filename string, fileContent []byte, userID *uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("video", filename)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// verifyErrorCode はエラーレスポンスのJSONを検証します。
func verifyErrorCode(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(bodyBytes, &errResp)
	require.NoError(t, err, "Failed to unmarshal error response body")
	assert.Equal(t, expectedCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
}
