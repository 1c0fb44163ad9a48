package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/soumzer/ferro/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	godotenv.Load()

	url := os.Getenv("FERRO_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "FERRO_DATABASE_URL not set and no config file found\n")
			os.Exit(1)
		}
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		fmt.Fprintf(os.Stderr, "No database connection string configured\n")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS exercises (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            category TEXT NOT NULL,
            primary_muscles TEXT NOT NULL DEFAULT '[]',
            contraindications TEXT NOT NULL DEFAULT '[]',
            instructions TEXT,
            is_rehab INTEGER NOT NULL DEFAULT 0,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS program_sessions (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            intensity TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS program_exercises (
            id TEXT PRIMARY KEY,
            program_session_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            order_index INTEGER NOT NULL,
            sets INTEGER NOT NULL,
            target_reps INTEGER NOT NULL,
            rest_seconds INTEGER NOT NULL,
            is_rehab INTEGER NOT NULL DEFAULT 0,
            FOREIGN KEY (program_session_id) REFERENCES program_sessions(id) ON DELETE CASCADE,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id)
        );

        CREATE TABLE IF NOT EXISTS rehab_protocols (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            zone TEXT NOT NULL UNIQUE,
            priority INTEGER NOT NULL
        );

        CREATE TABLE IF NOT EXISTS rehab_exercises (
            id TEXT PRIMARY KEY,
            protocol_id TEXT NOT NULL,
            name TEXT NOT NULL,
            sets INTEGER NOT NULL,
            reps TEXT NOT NULL,
            placement TEXT NOT NULL,
            notes TEXT,
            order_index INTEGER NOT NULL,
            FOREIGN KEY (protocol_id) REFERENCES rehab_protocols(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS conditions (
            id TEXT PRIMARY KEY,
            name TEXT,
            zone TEXT NOT NULL,
            active INTEGER NOT NULL DEFAULT 1,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS training_sessions (
            id TEXT PRIMARY KEY,
            program_session_id TEXT NOT NULL,
            phase TEXT NOT NULL DEFAULT 'normal',
            start_time TEXT NOT NULL,
            end_time TEXT,
            FOREIGN KEY (program_session_id) REFERENCES program_sessions(id)
        );

        CREATE TABLE IF NOT EXISTS session_exercises (
            id TEXT PRIMARY KEY,
            training_session_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            order_index INTEGER NOT NULL,
            FOREIGN KEY (training_session_id) REFERENCES training_sessions(id) ON DELETE CASCADE,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id)
        );

        CREATE TABLE IF NOT EXISTS exercise_sets (
            id TEXT PRIMARY KEY,
            session_exercise_id TEXT NOT NULL,
            set_number INTEGER NOT NULL,
            prescribed_reps INTEGER NOT NULL,
            prescribed_weight REAL NOT NULL,
            actual_reps INTEGER NOT NULL,
            actual_weight REAL NOT NULL,
            rir INTEGER,
            pain_reported INTEGER NOT NULL DEFAULT 0,
            pain_zone TEXT,
            pain_level INTEGER,
            rest_prescribed INTEGER,
            rest_actual INTEGER,
            completed_at TEXT NOT NULL,
            FOREIGN KEY (session_exercise_id) REFERENCES session_exercises(id) ON DELETE CASCADE
        );
    `)
	return err
}
