package tests_test

import (
	"context"
	"sync"
)

type MockSpreadsheetAppender struct {
	lock         sync.Mutex
	RowsAppended []AppendRowRequest
}

type AppendRowRequest struct {
	spreadsheetName string
	row             []string
}

func (m *MockSpreadsheetAppender) AppendRow(_ context.Context, spreadsheetName string, row []string) error {
	m.lock.Lock()
	m.RowsAppended = append(m.RowsAppended, AppendRowRequest{spreadsheetName: spreadsheetName, row: row})
	m.lock.Unlock()

	return nil
}

func (m *MockSpreadsheetAppender) Rows() []AppendRowRequest {
	m.lock.Lock()
	defer m.lock.Unlock()

	return append([]AppendRowRequest(nil), m.RowsAppended...)
}
