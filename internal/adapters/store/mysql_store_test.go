package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newMockMySQLStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS extractions").WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := newMySQLStore(db, zaptest.NewLogger(t))
	require.NoError(t, err)
	return s, mock
}

func TestMySQLStore_Save(t *testing.T) {
	s, mock := newMockMySQLStore(t)
	e := sampleEntry()

	mock.ExpectExec("INSERT INTO extractions").
		WithArgs("2026-10-18T09:30:00.000000", e.Message, e.Sender, "David Cohen", "054-123-4567", "15000", "", 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Save(context.Background(), "2026-10-18T09:30:00.000000", e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_SaveError(t *testing.T) {
	s, mock := newMockMySQLStore(t)

	mock.ExpectExec("INSERT INTO extractions").WillReturnError(errors.New("duplicate entry"))

	err := s.Save(context.Background(), "k", sampleEntry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert extraction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_All(t *testing.T) {
	s, mock := newMockMySQLStore(t)

	rows := sqlmock.NewRows([]string{"entry_key", "message", "sender", "name", "phone", "salary", "email", "extracted_count"}).
		AddRow("2026-10-18T09:30:00.000000", sampleEntry().Message, "Sarah_TLV", "David Cohen", "054-123-4567", "15000", "", 3)
	mock.ExpectQuery("SELECT (.+) FROM extractions").WillReturnRows(rows)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleEntry(), all["2026-10-18T09:30:00.000000"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_SchemaFailureClosesHandle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS extractions").WillReturnError(errors.New("access denied"))
	mock.ExpectClose()

	_, err = newMySQLStore(db, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_Stop(t *testing.T) {
	s, mock := newMockMySQLStore(t)
	mock.ExpectClose()

	s.Stop()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_SchemaKeepsUnboundedCaptures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec(`(?s)CREATE TABLE IF NOT EXISTS extractions.*salary\s+TEXT NOT NULL,.*email\s+TEXT NOT NULL,`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := newMySQLStore(db, zaptest.NewLogger(t))
	require.NoError(t, err)

	longSalary := strings.Repeat("9,", 40) + "000"
	e := sampleEntry()
	e.Data.Tenant.Salary = longSalary
	mock.ExpectExec("INSERT INTO extractions").
		WithArgs("k", e.Message, e.Sender, "David Cohen", "054-123-4567", longSalary, "", 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Save(context.Background(), "k", e))
	assert.NoError(t, mock.ExpectationsWereMet())
}
