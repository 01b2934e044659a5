package configs

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

// NewCloudinaryClient builds the upload client from CLOUDINARY_URL. A missing
// URL is not fatal: image uploads are a degradable feature and callers get nil.
func NewCloudinaryClient() *cloudinary.Cloudinary {
	if LoadENV.CLOUDINARY_URL == "" {
		log.Println("Warning: CLOUDINARY_URL not set, image uploads disabled")
		return nil
	}

	cld, err := cloudinary.NewFromURL(LoadENV.CLOUDINARY_URL)
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary client: %v. Image uploads disabled.", err)
		return nil
	}

	log.Println("✅ Cloudinary client initialized.")
	return cld
}
