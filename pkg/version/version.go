package version

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pterm/pterm"
)

const devVersion = "0.0.0-dev"

// Version, Commit e BuildTime podem ser definidos via -ldflags -X.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(bi)
	}
}

// applyBuildInfo completa os campos vazios a partir das informações do build.
// A versão do módulo vem de "go install ...@vX.Y.Z"; builds locais reportam
// "(devel)" e mantêm a versão dev.
func applyBuildInfo(bi *debug.BuildInfo) {
	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = strings.TrimPrefix(bi.Main.Version, "v")
		if settings["vcs.modified"] == "true" {
			Version += "-dirty"
		}
	}

	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}
}

// ReleasesURL aponta para a última release publicada no GitHub.
var ReleasesURL = "https://api.github.com/repos/diillson/aws-bill-analyzer-go/releases/latest"

// CheckLatestVersion avisa no console quando existe uma release mais nova.
// Falhas de rede são ignoradas silenciosamente.
func CheckLatestVersion(currentVersion string) {
	// Versões dev não são verificadas
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	latestVersion, err := LatestRelease(ctx, http.DefaultClient, ReleasesURL)
	if err != nil {
		return
	}

	if IsNewer(latestVersion, currentVersion) {
		pterm.Warning.Println(fmt.Sprintf("A new version of AWS Bill Analyzer is available: %s", latestVersion))
		pterm.Info.Println("Please update using: go install github.com/diillson/aws-bill-analyzer-go/cmd/aws-bill-analyzer@latest")
	}
}

// LatestRelease consulta a API de releases e retorna a tag sem o prefixo "v".
func LatestRelease(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release without tag_name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}

// IsNewer compara versões major.minor.patch numericamente.
// Sufixos como "-dirty" ou "-rc1" são descartados antes da comparação.
func IsNewer(latest, current string) bool {
	l, c := versionParts(latest), versionParts(current)
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var parts [3]int
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	for i, field := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(field)
		if err != nil {
			break
		}
		parts[i] = n
	}
	return parts
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
// Fallbacks: quando não há ldflags, usamos os valores populados via build info.
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	// Quando commit é "development", exibimos "(development)" para clareza
	if commit == "development" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
