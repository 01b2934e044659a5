package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	SESSION_KEY string
	AppAuthKey  string
	AppEncKey   string
	CSRF_KEY    string

	IDENTITY_WEBHOOK_SECRET string
	CLOUDINARY_URL          string
	CLOUDINARY_FOLDER       string

	APP_URL string
	APP_ENV string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		SESSION_KEY: os.Getenv("SESSION_KEY"),
		AppAuthKey:  os.Getenv("APP_AUTH_KEY"),
		AppEncKey:   os.Getenv("APP_ENC_KEY"),
		CSRF_KEY:    os.Getenv("CSRF_KEY"),

		IDENTITY_WEBHOOK_SECRET: os.Getenv("IDENTITY_WEBHOOK_SECRET"),
		CLOUDINARY_URL:          os.Getenv("CLOUDINARY_URL"),
		CLOUDINARY_FOLDER:       os.Getenv("CLOUDINARY_FOLDER"),

		APP_URL: os.Getenv("APP_URL"),
		APP_ENV: os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
