package hotel

import (
	"fmt"
	"os"
	"strings"

	"github.com/getsops/sops/v3/decrypt"
)

// Configuration loads a JSON configuration file into T. When the plain file
// does not exist, a SOPS-encrypted variant with the ".enc.json" extension is
// tried and decrypted.
func Configuration[T any](configPath ...string) (*T, error) {
	fileName := "configs/properties"
	if len(configPath) > 0 && configPath[0] != "" {
		fileName = configPath[0]
	}

	filePath, encrypted, err := resolveConfigFile(fileName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	if encrypted {
		if data, err = decrypt.Data(data, "json"); err != nil {
			return nil, fmt.Errorf("failed to decrypt config file %s: %w", filePath, err)
		}
	}

	config := new(T)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}
	return config, nil
}

func resolveConfigFile(fileName string) (string, bool, error) {
	fileName = strings.TrimLeft(fileName, "./")
	fileName = strings.TrimSuffix(fileName, ".json")
	fileName = strings.TrimSuffix(fileName, ".enc")

	plain := "./" + fileName + ".json"
	if _, err := os.Stat(plain); err == nil {
		return plain, false, nil
	}

	encrypted := "./" + fileName + ".enc.json"
	if _, err := os.Stat(encrypted); err == nil {
		return encrypted, true, nil
	}

	return "", false, fmt.Errorf("config file %s not found", plain)
}
