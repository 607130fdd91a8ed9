package resolvers

import (
	"os"
	"testing"

	"main/utils"
)

func TestMain(m *testing.M) {
	// Инициализируем логгер и локализацию для unit тестов
	utils.InitLogger()
	if err := utils.InitI18n(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
