/*
Sqifttest opens a SQLite database and pushes a value of every SQift binding
type through a full bind and extract round trip, printing what comes back. It
exists to smoke-test the conversion layer against a real database rather than
a mock.

Usage:

	sqifttest [flags]

The flags are:

	-c, --conf PATH
		Use the given file for the configuration instead of './sqift.yml'. The
		file must be in JSON or YAML format. If the file does not exist, the
		default configuration is used, which holds the database in memory.
*/
package main

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"os"
	"time"

	sqift "github.com/NousDaddy/SQift"
	"github.com/NousDaddy/SQift/config"
	"github.com/NousDaddy/SQift/logging"
	"github.com/NousDaddy/SQift/sqlite"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = 0
	exitError   = 1
	exitPanic   = 2
)

var exitCode int

var (
	flagConf = pflag.StringP("conf", "c", "sqift.yml", "Path to configuration file")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal error: %v\n", panicErr)
			exitCode = exitPanic
		}
		os.Exit(exitCode)
	}()

	pflag.Parse()

	cfg, err := loadConfig(*flagConf)
	if err != nil {
		fatalf("%v", err)
		return
	}

	log := logging.Logger(logging.NoOpLogger{})
	if cfg.Log.Enabled {
		log, err = cfg.Log.Create()
		if err != nil {
			fatalf("create logger: %v", err)
			return
		}
	}

	conn, err := sqlite.Open(cfg.DB.File)
	if err != nil {
		fatalf("%v", err)
		return
	}
	conn.Log = log
	defer conn.Close()

	if err := run(context.Background(), conn); err != nil {
		fatalf("%v", err)
		return
	}
}

func loadConfig(file string) (config.Config, error) {
	var cfg config.Config

	if _, err := os.Stat(file); err == nil {
		cfg, err = config.Load(file)
		if err != nil {
			return cfg, err
		}
	}

	cfg = cfg.FillDefaults()
	return cfg, cfg.Validate()
}

func run(ctx context.Context, conn *sqlite.Connection) error {
	err := conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS round_trips (
		flag INTEGER NOT NULL,
		small INTEGER NOT NULL,
		big INTEGER NOT NULL,
		huge INTEGER NOT NULL,
		ratio REAL NOT NULL,
		name TEXT NOT NULL,
		id TEXT NOT NULL,
		home TEXT NOT NULL,
		seen TEXT NOT NULL,
		payload BLOB NOT NULL,
		packed BLOB NOT NULL,
		note TEXT
	);`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	home, _ := url.Parse("https://example.com/a")
	id := uuid.New()
	seen := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	err = conn.Exec(ctx,
		`INSERT INTO round_trips (flag, small, big, huge, ratio, name, id, home, seen, payload, packed, note) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		sqift.Bool(true),
		sqift.Int8(100),
		sqift.Int64(math.MinInt64),
		sqift.Uint64(math.MaxUint64),
		sqift.Float64(3.25),
		sqift.String("hello"),
		sqift.UUID(id),
		sqift.URL{V: home},
		sqift.Time(seen),
		sqift.Bytes{0xde, 0xca, 0xfb, 0xad},
		sqift.Packed{V: []string{"a", "b", "c"}},
		sqift.Null{},
	)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	var (
		flag    sqift.Bool
		small   sqift.Int8
		big     sqift.Int64
		huge    sqift.Uint64
		ratio   sqift.Float64
		name    sqift.String
		gotID   sqift.UUID
		gotHome sqift.URL
		gotSeen sqift.Time
		payload sqift.Bytes
		packed  = sqift.Packed{V: &[]string{}}
	)

	err = conn.QueryRow(ctx,
		`SELECT flag, small, big, huge, ratio, name, id, home, seen, payload, packed FROM round_trips;`,
		nil,
		&flag, &small, &big, &huge, &ratio, &name, &gotID, &gotHome, &gotSeen, &payload, &packed,
	)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	fmt.Printf("flag:    %v\n", bool(flag))
	fmt.Printf("small:   %d\n", int8(small))
	fmt.Printf("big:     %d\n", int64(big))
	fmt.Printf("huge:    %d\n", uint64(huge))
	fmt.Printf("ratio:   %g\n", float64(ratio))
	fmt.Printf("name:    %s\n", string(name))
	fmt.Printf("id:      %s\n", uuid.UUID(gotID))
	fmt.Printf("home:    %s\n", gotHome)
	fmt.Printf("seen:    %s\n", gotSeen.Time().Format(time.RFC3339))
	fmt.Printf("payload: %x\n", []byte(payload))
	fmt.Printf("packed:  %v\n", *packed.V.(*[]string))

	return nil
}

func fatalf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	exitCode = exitError
}
