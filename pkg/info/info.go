package info

var (
	// Version of the tool
	Version = "<todo>"
	// Commit in git in short format
	Commit = "<todo>"
	// GoVersion info on build moment
	GoVersion = "<todo>"
	// BuildDate is date and time in format +%Y-%m-%d_%H:%M:%S
	BuildDate = "<todo>"
)

type Info struct {
	Name      string
	Version   string
	Commit    string
	GoVersion string
	BuildDate string
}

// New returns build info
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		Commit:    Commit,
		GoVersion: GoVersion,
		BuildDate: BuildDate,
	}
}

func (i *Info) String() string {
	return i.Name + " " + i.Version + " (" + i.Commit + ", " + i.GoVersion + ", " + i.BuildDate + ")"
}
