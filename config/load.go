package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// configDirEnv, when set, is searched before any other directory.
const configDirEnv = "CONFIG_DIR"

// Load decodes <name>.yaml from the first of dirs that has it, then overlays
// every environment variable. POSTGRES_MASTER_USERNAME lands on
// postgres.master.userName because segments are matched against the keys the
// file already uses.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	fileKeys := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(name, value string) (string, any) {
			return envKeyPath(name, fileKeys), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(fileName string, dirs []string) (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		dirs = append([]string{dir}, dirs...)
	}

	for _, dir := range dirs {
		candidate, err := filepath.Abs(filepath.Join(dir, fileName))
		if err != nil {
			return "", errors.Wrapf(err, "resolve %s", dir)
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", fileName, strings.Join(dirs, ", "))
}

// envKeyPath turns an environment variable name into a koanf path, reusing
// the spelling of keys present in the loaded file. Unknown segments stay
// lowercase.
func envKeyPath(name string, known map[string]any) string {
	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	node := known

	for i, segment := range segments {
		segments[i], node = lookupKey(node, segment)
	}

	return strings.Join(segments, ".")
}

func lookupKey(node map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return strings.ToLower(segment), nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		get := func(field string) string {
			v, _ := lookup("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)

			return v
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
