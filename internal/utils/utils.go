package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/soumzer/ferro/internal/models"
)

func ParseExercisesFromTOML(path string) (*models.ExerciseImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.ExerciseImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, err
	}

	return &imp, nil
}

func ParseProgramSessionFromTOML(path string) (*models.ProgramSessionTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var program models.ProgramSessionTOML
	if err := toml.Unmarshal(data, &program); err != nil {
		return nil, err
	}

	return &program, nil
}

func ParseRehabProtocolsFromTOML(path string) (*models.RehabImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.RehabImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, err
	}

	return &imp, nil
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
