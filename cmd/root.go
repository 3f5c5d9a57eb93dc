package cmd

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/logging"
	"github.com/abhisek/quizbox/internal/preference"
	"github.com/abhisek/quizbox/internal/preference/redisstore"
	"github.com/abhisek/quizbox/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizbox",
	Short: "Multiple-choice quiz in the terminal",
	Long:  "Quizbox is a small terminal quiz that remembers whether you like it light or dark.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZBOX_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides QUIZBOX_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-file", "", `Path to log file, or "off"`)
	rootCmd.Flags().Bool("no-persist", false, "Keep the theme preference in memory only")

	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, QUIZBOX_CONFIG, or
// the default XDG location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

// newLogger builds the file logger using --log-file, then log.file from
// config, then the default XDG state path.
func newLogger(cmd *cobra.Command, cfg config.Config) (*logging.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return logging.New(cfg.Log.Mode, path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZBOX_DB env var, then preferences.db from config, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if os.Getenv("QUIZBOX_DB") == "" && cfg.Preferences.DB != "" {
		return cfg.Preferences.DB, store.EnsureDir(cfg.Preferences.DB)
	}
	return store.DefaultDBPath()
}

// preferenceStore is a Store that can also delete the preference and must
// be closed after use.
type preferenceStore interface {
	preference.Store
	preference.Clearer
	Close() error
}

// openPreferenceStore opens the configured backend.
func openPreferenceStore(cmd *cobra.Command, cfg config.Config, log *logging.Logger) (preferenceStore, error) {
	switch cfg.Preferences.Backend {
	case config.BackendMemory:
		log.Info("using in-memory preference store")
		return memoryStore{preference.NewMemoryStore()}, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("using redis preference store", "addr", cfg.Redis.Addr)
		return redisStore{Store: redisstore.New(client, redisstore.DefaultPrefix), client: client}, nil

	default:
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		log.Info("using sqlite preference store", "path", dbPath)
		return sqliteStore{PreferenceRepo: st.PreferenceRepo(), st: st}, nil
	}
}

type memoryStore struct {
	*preference.MemoryStore
}

func (memoryStore) Close() error { return nil }

type redisStore struct {
	*redisstore.Store
	client *redis.Client
}

func (s redisStore) Close() error { return s.client.Close() }

type sqliteStore struct {
	*store.PreferenceRepo
	st *store.Store
}

func (s sqliteStore) Close() error { return s.st.Close() }
