package config

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

type Config struct {
	Port     string
	DBDriver string
	DBFile   string
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, using process environment")
	}

	cfg := Config{}
	cfg.parseFlags(flag.CommandLine, os.Args[1:])
	cfg.applyEnv()

	return &cfg
}

func (c *Config) parseFlags(fs *flag.FlagSet, args []string) {
	fs.StringVar(&c.Port, "port", "8080", "http port")
	fs.StringVar(&c.DBDriver, "dbdriver", DriverSQLite, "sqlite3, pgx or postgres")
	fs.StringVar(&c.DBFile, "dbfile", "./database/database.sqlite", "sqlite file or postgres dsn")

	fs.Parse(args)

	c.Port = ":" + c.Port
}

func (c *Config) applyEnv() {
	port := os.Getenv("TODO_PORT")
	if len(port) > 0 {
		c.Port = ":" + port
	}

	driver := os.Getenv("TODO_DBDRIVER")
	if len(driver) > 0 {
		c.DBDriver = driver
	}

	dbfile := os.Getenv("TODO_DBFILE")
	if len(dbfile) > 0 {
		c.DBFile = dbfile
	}
}
