package notifier

// Config holds notifier settings loaded from the environment.
type Config struct {
	// ProductionURI is the absolute base URL of the platform, used to build
	// links inside notices. No trailing slash.
	ProductionURI string `env:"PRODUCTION_URI" envDefault:"https://readthedocs.org"`

	// DevEmailDir is where the development sender saves rendered notices.
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./dev_emails"`
}
