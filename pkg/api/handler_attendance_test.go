package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func attendanceWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Group A"))

	rows := [][]string{
		{"Team", ""},
		{"", "05.03.2026", "12.03.2026"},
		{"team rocket", "x", ""},
		{"team nova", "x", "x"},
	}
	for r, row := range rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr("Group A", name, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, url, field string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "attendance.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadAttendanceHandler(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(multipartUpload(t, "/api/v1/attendance/9", "file", attendanceWorkbook(t)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AttendanceUploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.CourseID)
	assert.Equal(t, 2, resp.Teams)

	record := f.server.attendance.Get(9)
	require.NotNil(t, record)
	assert.Len(t, record["team rocket"], 1)
	assert.Len(t, record["team nova"], 2)
}

func TestUploadAttendanceHandler_MissingFile(t *testing.T) {
	f := newServerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/9", nil)
	rec := f.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAttendanceHandler_NotAWorkbook(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(multipartUpload(t, "/api/v1/attendance/9", "file", []byte("not an xlsx")))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUploadAttendanceHandler_ReplacesPreviousUpload(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(multipartUpload(t, "/api/v1/attendance/9", "file", attendanceWorkbook(t)))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(multipartUpload(t, "/api/v1/attendance/9", "file", attendanceWorkbook(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, f.server.attendance.Get(9), 2)
}
