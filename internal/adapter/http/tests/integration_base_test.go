//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	dbadapter "creatingtasks/internal/adapter/db"
	"creatingtasks/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase provisions a throwaway *_test schema on the MySQL
// server described by the MYSQL_* variables and skips when it is unreachable.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	conf := &config.Config{
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbParams:   envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
	}
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "tasks")+"_test")
	if !strings.HasSuffix(database, "_test") {
		s.T().Fatalf("refusing to run against %q: test database names must end in _test", database)
	}

	adminDB, err := dbadapter.ConnectDB(conf)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", database))
	s.Require().NoError(err)

	conf.DbName = database
	s.DB, err = dbadapter.ConnectDB(conf)
	s.Require().NoError(err)
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB != nil {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
		s.Require().NoError(s.adminDB.Close())
	}
}

// ResetDatabase rolls every migration down and up again.
func (s *IntegrationSuiteBase) ResetDatabase() {
	down := migrationFiles(s.T(), "*.down.sql")
	sort.Sort(sort.Reverse(sort.StringSlice(down)))
	execFiles(s.T(), s.DB, down)
	execFiles(s.T(), s.DB, migrationFiles(s.T(), "*.up.sql"))
}

func migrationFiles(t *testing.T, pattern string) []string {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(projectRoot(t), "db", "migrations", pattern))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)
	return files
}

func execFiles(t *testing.T, db *sqlx.DB, files []string) {
	t.Helper()

	for _, file := range files {
		content, err := os.ReadFile(file)
		require.NoError(t, err)
		_, err = db.Exec(string(content))
		require.NoError(t, err, filepath.Base(file))
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
