package controllers

import (
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// MediaController stores uploaded images in GridFS and streams them back
// out. Content model fields (imageURL, profileImageURL and friends) carry
// URLs produced by Upload.
type MediaController struct {
	bucket *gridfs.Bucket
}

func NewMediaController(bucket *gridfs.Bucket) *MediaController {
	return &MediaController{bucket: bucket}
}

func (mc *MediaController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	defer src.Close()

	fileID := primitive.NewObjectID()
	uploadStream, err := mc.bucket.OpenUploadStreamWithID(fileID, file.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	defer uploadStream.Close()

	if _, err := io.Copy(uploadStream, src); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	url := os.Getenv("HOST_NAME") + "/api/media/" + fileID.Hex()
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "file uploaded", "url": url})
}

func (mc *MediaController) Serve(c *gin.Context) {
	fileID, ok := pathObjectID(c, "media_id")
	if !ok {
		return
	}

	stream, err := mc.bucket.OpenDownloadStream(fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "media not found"})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/png")
	if _, err := io.Copy(c.Writer, stream); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to stream media"})
		return
	}
}
