package i18n

import "fmt"

// User-visible strings, keyed the same way the site's translation
// files were.
const (
	KeyRequiredField       = "requiredField"
	KeyCustomerName        = "customerName"
	KeyPhoneNumber         = "phoneNumber"
	KeyDeliveryAddress     = "deliveryAddress"
	KeyOrderError          = "orderError"
	KeyOrderSuccess        = "orderSuccess"
	KeyOrderPending        = "orderPending"
	KeyLocationError       = "locationError"
	KeyEmptyCart           = "emptyCart"
	KeySelectionIncomplete = "selectionIncomplete"
	KeyRequiresSelection   = "requiresSelection"
	KeyItemNotFound        = "itemNotFound"
	KeyItemUnavailable     = "itemUnavailable"
)

var messages = map[string]map[Language]string{
	KeyRequiredField: {
		Hebrew:  "שדה חובה",
		English: "Required field",
	},
	KeyCustomerName: {
		Hebrew:  "שם מלא",
		English: "Full name",
	},
	KeyPhoneNumber: {
		Hebrew:  "מספר טלפון",
		English: "Phone number",
	},
	KeyDeliveryAddress: {
		Hebrew:  "כתובת למשלוח",
		English: "Delivery address",
	},
	KeyOrderError: {
		Hebrew:  "שליחת ההזמנה נכשלה, נסו שוב",
		English: "Failed to submit the order, please try again",
	},
	KeyOrderSuccess: {
		Hebrew:  "ההזמנה התקבלה!",
		English: "Order received!",
	},
	KeyOrderPending: {
		Hebrew:  "הזמנה כבר נשלחת, רגע אחד",
		English: "An order is already being submitted",
	},
	KeyLocationError: {
		Hebrew:  "לא ניתן לאתר את המיקום שלך",
		English: "Unable to retrieve your location",
	},
	KeyEmptyCart: {
		Hebrew:  "העגלה ריקה",
		English: "Your cart is empty",
	},
	KeySelectionIncomplete: {
		Hebrew:  "יש להשלים את הבחירה לפני ההוספה",
		English: "Complete your selection before adding",
	},
	KeyRequiresSelection: {
		Hebrew:  "פריט זה דורש בחירת רטבים",
		English: "This item requires choosing sauces",
	},
	KeyItemNotFound: {
		Hebrew:  "הפריט לא נמצא",
		English: "Item not found",
	},
	KeyItemUnavailable: {
		Hebrew:  "הפריט אינו זמין כרגע",
		English: "Item is currently unavailable",
	},
}

// T returns the message for key in the given language. Unknown keys
// come back as the key itself so a missing translation is visible
// instead of silent.
func T(lang Language, key string) string {
	byLang, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[Hebrew]
}

// RequiredField builds the "Required field: X" validation message the
// checkout form shows for a missing field.
func RequiredField(lang Language, fieldKey string) string {
	return fmt.Sprintf("%s: %s", T(lang, KeyRequiredField), T(lang, fieldKey))
}
