/*
Studentdb reads and modifies the specialties and students kept in a studentdb
database.

Usage:

	studentdb [flags] COMMAND [ARGS...]

The commands are:

	init
		Create the Speciality and Student tables if they do not already exist.

	specialties
		List every specialty.

	students
		List every student along with their specialty.

	add-specialty NAME [CODE [DESCRIPTION]]
		Add a new specialty and print it.

	add-student NAME AGE SEX SPECIALTY_ID
		Add a new student enrolled in the specialty with the given ID and print
		it.

	delete-specialty ID
		Delete the specialty with the given ID. Students enrolled in it are
		kept.

	delete-student ID
		Delete the student with the given ID.

	dump-config
		Print the configuration in effect as YAML.

The flags are:

	-c, --config PATH
		Load configuration from the given JSON or YAML file. If not given, a
		SQLite database in ./students.db is used.

	-d, --db CONN
		Use the given database connection string instead of the one in the
		configuration. It must be of the form "sqlite:PATH" or "mysql:DSN".

	-v, --verbose
		Log each database operation to stderr.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/dekarrin/jellog"
	"github.com/dekarrin/studentdb"
	"github.com/dekarrin/studentdb/config"
	"github.com/dekarrin/studentdb/dao"
	"github.com/dekarrin/studentdb/dao/sqlite"
	"github.com/dekarrin/studentdb/db"
	"github.com/dekarrin/studentdb/internal/logging"
	"github.com/spf13/pflag"
)

const (
	exitSuccess   = 0
	exitError     = 1
	exitPanic     = 2
	exitInterrupt = 3
	exitUsage     = 4
)

var exitCode int

var (
	flagConf    = pflag.StringP("config", "c", "", "Path to configuration file")
	flagDB      = pflag.StringP("db", "d", "", "Database connection string; overrides the configured database")
	flagVerbose = pflag.BoolP("verbose", "v", false, "Log database operations to stderr")
)

// schemaCreator is a connection manager that can create the tables used by
// the mappers.
type schemaCreator interface {
	InitSchema(ctx context.Context) error
}

type mappers struct {
	conns       studentdb.ConnManager
	specialties *sqlite.Specialties
	students    *sqlite.Students
}

func main() {
	ctx, cancelMainContext := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	defer func() {
		signal.Stop(signalChan)
		cancelMainContext()
	}()
	go func() {
		select {
		case <-signalChan: // first signal, cancel context
			cancelMainContext()
		case <-ctx.Done():
		}

		<-signalChan // second signal, hard exit
		os.Exit(exitInterrupt)
	}()

	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal panic: %v\n", panicErr)
			exitCode = exitPanic
		}
		os.Exit(exitCode)
	}()

	pflag.Parse()

	stdErrOutput := jellog.NewStderrHandler(nil)
	logger := jellog.New(jellog.Defaults[string]().
		WithComponent("studentdb"))
	if *flagVerbose {
		logger.AddHandler(jellog.LvDebug, stdErrOutput)
	} else {
		logger.AddHandler(jellog.LvWarn, stdErrOutput)
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "ERROR: no command given\n")
		pflag.Usage()
		exitCode = exitUsage
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	if args[0] == "dump-config" {
		data, err := config.Dump(config.YAML, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
			return
		}
		fmt.Print(string(data))
		return
	}

	log, err := logging.FromConfig(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	logger.Debugf("Connecting to %s database...", cfg.DB.Type)
	conns, err := db.Connect(cfg.DB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	exec := dao.NewExecutor(conns, log)
	specialties := sqlite.NewSpecialties(exec)
	m := mappers{
		conns:       conns,
		specialties: specialties,
		students:    sqlite.NewStudents(exec, specialties),
	}

	if err := run(ctx, m, args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitUsage
			return
		}
		if errors.Is(err, studentdb.ErrNotImplemented) {
			logger.Warnf("%s databases cannot be read or written yet", cfg.DB.Type)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}
}

func loadConfig() (studentdb.Config, error) {
	cfg := studentdb.Config{}.FillDefaults()
	if *flagConf != "" {
		var err error
		cfg, err = config.Load(*flagConf)
		if err != nil {
			return cfg, err
		}
	}

	if *flagDB != "" {
		dbCfg, err := studentdb.ParseDBConnString(*flagDB)
		if err != nil {
			return cfg, fmt.Errorf("--db: %w", err)
		}
		cfg.DB = dbCfg
	}

	if *flagVerbose {
		cfg.Log.Enabled = true
		cfg.Log = cfg.FillDefaults().Log
	}

	return cfg, cfg.Validate()
}

var errUsage = errors.New("bad usage")

func usageErrorf(format string, a ...any) error {
	return studentdb.NewError(fmt.Sprintf(format, a...), errUsage)
}

func run(ctx context.Context, m mappers, cmd string, args []string) error {
	switch cmd {
	case "init":
		sc, ok := m.conns.(schemaCreator)
		if !ok {
			return fmt.Errorf("cannot create schema in a %s database", m.conns.Type())
		}
		if err := sc.InitSchema(ctx); err != nil {
			return err
		}
		fmt.Println("Schema created")
	case "specialties":
		all, err := m.specialties.GetAll(ctx)
		if err != nil {
			return err
		}
		for _, sp := range studentdb.SortByID(all) {
			fmt.Println(sp)
		}
	case "students":
		all, err := m.students.GetAll(ctx)
		if err != nil {
			return err
		}
		for _, st := range studentdb.SortByID(all) {
			fmt.Println(st)
		}
	case "add-specialty":
		if len(args) < 1 || len(args) > 3 {
			return usageErrorf("add-specialty takes NAME [CODE [DESCRIPTION]]")
		}
		sp := studentdb.Specialty{Name: args[0]}
		if len(args) > 1 {
			sp.Code = args[1]
		}
		if len(args) > 2 {
			sp.Description = args[2]
		}
		saved, err := m.specialties.Save(ctx, sp)
		if err != nil {
			return err
		}
		fmt.Println(saved)
	case "add-student":
		if len(args) != 4 {
			return usageErrorf("add-student takes NAME AGE SEX SPECIALTY_ID")
		}
		age, err := strconv.Atoi(args[1])
		if err != nil {
			return usageErrorf("AGE: not an integer: %q", args[1])
		}
		specID, err := parseID(args[3])
		if err != nil {
			return err
		}
		sp, err := m.specialties.Get(ctx, specID)
		if err != nil {
			return err
		}
		if sp == nil {
			return fmt.Errorf("no specialty with ID %d", specID)
		}
		saved, err := m.students.Save(ctx, studentdb.Student{Name: args[0], Age: age, Sex: args[2], Specialty: sp})
		if err != nil {
			return err
		}
		fmt.Println(saved)
	case "delete-specialty", "delete-student":
		if len(args) != 1 {
			return usageErrorf("%s takes ID", cmd)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var mapper dao.DataMapper = m.specialties
		if cmd == "delete-student" {
			mapper = m.students
		}
		n, err := mapper.Delete(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d record(s)\n", n)
	default:
		return usageErrorf("unknown command %q", cmd)
	}

	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, usageErrorf("ID: not a positive integer: %q", s)
	}
	return id, nil
}
