package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL paths to resource types
var pathToResourceType = map[string]string{
	"cars":       models.ResourceTypeCar,
	"categories": models.ResourceTypeCategory,
	"messages":   models.ResourceTypeMessage,
	"admins":     models.ResourceTypeAdmin,
}

// resourceTypeToNameField maps resource types to their name field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeCategory: "name",
	models.ResourceTypeMessage:  "email",
	models.ResourceTypeAdmin:    "email",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs admin actions automatically
// Must be used AFTER AdminAuthMiddleware (which sets adminID and adminEmail)
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		adminIDRaw, adminIDExists := c.Get("adminID")
		adminEmailRaw, adminEmailExists := c.Get("adminEmail")

		if !adminIDExists || !adminEmailExists {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}

		adminID := uuid.UUID{}
		if id, ok := adminIDRaw.(uuid.UUID); ok {
			adminID = id
		} else if idStr, ok := adminIDRaw.(string); ok {
			parsedID, err := uuid.Parse(idStr)
			if err != nil {
				log.Printf("[activity-logging] failed to parse admin ID: %v", err)
				c.Next()
				return
			}
			adminID = parsedID
		}

		adminEmail, _ := adminEmailRaw.(string)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			log.Printf("[activity-logging] could not determine resource type from path: %s", c.Request.URL.Path)
			c.Next()
			return
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			log.Printf("[activity-logging] warning: no :id param found for %s", c.Request.URL.Path)
		}

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		// e.g. "created_car", "updated_category"
		action := actionVerb + "_" + resourceType

		var beforeObject interface{}
		if c.Request.Method != "POST" && resourceID != "" {
			beforeObject = fetchResourceFromDB(resourceType, resourceID)
		}

		resourceName := extractResourceName(resourceType, beforeObject)

		c.Set("activityAction", action)
		c.Set("activityResourceType", resourceType)
		c.Set("activityResourceID", resourceID)
		c.Set("activityResourceName", resourceName)
		c.Set("activityBeforeObject", beforeObject)
		c.Set("activityAdminID", adminID)
		c.Set("activityAdminEmail", adminEmail)

		c.Next()

		statusCode := c.Writer.Status()
		isSuccess := statusCode >= 200 && statusCode < 300

		if isSuccess {
			var afterObject interface{}
			if resourceID != "" {
				afterObject = fetchResourceFromDB(resourceType, resourceID)
			}

			updatedResourceName := extractResourceName(resourceType, afterObject)

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: updatedResourceName,
				Changes:      services.CreateChanges(beforeObject, afterObject),
				Status:       models.StatusSuccess,
				Context:      c,
			})

			log.Printf("[activity-logging] success: %s by %s", action, adminEmail)
		} else {
			errorMsg := "Request failed with status " + http.StatusText(statusCode)

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       models.StatusFailed,
				ErrorMessage: errorMsg,
				Context:      c,
			})

			log.Printf("[activity-logging] failed: %s by %s - status %d", action, adminEmail, statusCode)
		}
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType extracts resource type from URL path
// e.g., "/api/v1/admin/categories/123" → "category"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")

	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !isIDParam(parts[i]) {
			singular := strings.TrimSuffix(parts[i], "s") // Remove trailing 's' for plural
			if resourceType, exists := pathToResourceType[parts[i]]; exists {
				return resourceType
			}
			if resourceType, exists := pathToResourceType[singular]; exists {
				return resourceType
			}
		}
	}

	return ""
}

// isIDParam checks if a path segment is an ID parameter
func isIDParam(segment string) bool {
	if segment == ":id" || segment == "" {
		return true
	}
	if _, err := uuid.Parse(segment); err == nil {
		return true
	}
	return false
}

// fetchResourceFromDB fetches a resource from the database
func fetchResourceFromDB(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	switch resourceType {
	case models.ResourceTypeCar:
		var car models.Car
		if err := config.Gorm.WithContext(ctx).First(&car, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch car %s: %v", resourceID, err)
			return nil
		}
		return car

	case models.ResourceTypeCategory:
		var category models.Category
		if err := config.Gorm.WithContext(ctx).First(&category, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch category %s: %v", resourceID, err)
			return nil
		}
		return category

	case models.ResourceTypeMessage:
		var msg models.ContactMessage
		if err := config.Gorm.WithContext(ctx).First(&msg, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch message %s: %v", resourceID, err)
			return nil
		}
		return msg

	case models.ResourceTypeAdmin:
		var admin models.Admin
		if err := config.Gorm.WithContext(ctx).First(&admin, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch admin %s: %v", resourceID, err)
			return nil
		}
		return admin

	default:
		log.Printf("[activity-logging] unknown resource type: %s", resourceType)
		return nil
	}
}

// extractResourceName extracts the name/identifier from a resource object
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}

	var resourceMap map[string]interface{}
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	if resourceType == models.ResourceTypeCar {
		return strings.TrimSpace(toString(resourceMap["brand"]) + " " + toString(resourceMap["model"]))
	}

	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	if value, exists := resourceMap[fieldName]; exists {
		return toString(value)
	}

	return ""
}

// toString converts any value to string
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
