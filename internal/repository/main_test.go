// internal/repository/main_test.go
package repository_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"examrisk/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB はパッケージ内の統合テストで共有するPostgreSQL接続。
// TestMainがdockertestでコンテナを起動して初期化する。
var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=examrisk_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	hostAndPort := resource.GetHostPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://user:secret@%s/examrisk_test?sslmode=disable", hostAndPort)

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := testDB.AutoMigrate(
		&model.Student{},
		&model.Assessment{},
		&model.ErrorLog{},
		&model.Exam{},
		&model.RiskProfile{},
		&model.RiskHistory{},
		&model.StudyPlan{},
		&model.StudyPlanWeek{},
	); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}

	os.Exit(code)
}

// clearTables は各テストの前にテーブルを空にする
func clearTables(t *testing.T) {
	t.Helper()
	tables := []string{
		"study_plan_weeks", "study_plans", "risk_history", "risk_profiles",
		"error_logs", "assessments", "exams", "students",
	}
	for _, table := range tables {
		if err := testDB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}
