package archive

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGORMTestConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, newGORMTestConfig())
	if err != nil {
		return "", nil, nil, err
	}

	return DriverMySQL, db, mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, newGORMTestConfig())
	if err != nil {
		return "", nil, nil, err
	}

	return DriverPostgres, db, mock, nil
}

var _sqlMockFnList = []func() (string, *gorm.DB, sqlmock.Sqlmock, error){
	newGORMMySQLMock,
	newGORMPostgresMock,
}

// expectInsert registers the statements of one Append call.
func expectInsert(dialect string, mock sqlmock.Sqlmock, n int) {
	mock.ExpectBegin()
	switch dialect {
	case DriverMySQL:
		mock.ExpectExec("^INSERT INTO `archive_records` .* ON DUPLICATE KEY UPDATE .*$").
			WillReturnResult(sqlmock.NewResult(1, int64(n)))
	case DriverPostgres:
		rows := sqlmock.NewRows([]string{"id"})
		for i := 0; i < n; i++ {
			rows.AddRow(i + 1)
		}
		mock.ExpectQuery(`^INSERT INTO "archive_records" .* ON CONFLICT .* RETURNING "id"$`).WillReturnRows(rows)
	}
	mock.ExpectCommit()
}
