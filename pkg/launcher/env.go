package launcher

import "strings"

// BuildEnv copies the parent environment into a new map and points
// ModuleSearchPathVar at sourceRoot. Any inherited value for that
// variable is replaced, not merged. parent is never modified.
func BuildEnv(parent []string, sourceRoot string) map[string]string {
	env := make(map[string]string, len(parent)+1)

	for _, kv := range parent {
		key, value, ok := splitEnvEntry(kv)
		if !ok {
			continue
		}
		env[key] = value
	}

	for key := range env {
		if envKeyEqual(key, ModuleSearchPathVar) {
			delete(env, key)
		}
	}
	env[ModuleSearchPathVar] = sourceRoot

	return env
}

// splitEnvEntry splits KEY=VALUE at the first '=' after the first byte.
// Windows keeps per-drive entries such as "=C:=C:\dir" whose key starts with '='.
func splitEnvEntry(kv string) (key, value string, ok bool) {
	if kv == "" {
		return "", "", false
	}
	i := strings.IndexByte(kv[1:], '=')
	if i < 0 {
		return "", "", false
	}
	i++
	return kv[:i], kv[i+1:], true
}
