package domain

const (
	// Contract struct names, matched against the trailing segment of a Move type
	STRUCT_PROFILE = "Profile"
	STRUCT_SUIT    = "Suit"
	STRUCT_LIKE    = "Like"
	STRUCT_COMMENT = "Comment"

	// Contract entry functions
	FUNCTION_CREATE_PROFILE = "create_profile"
	FUNCTION_CREATE_SUIT    = "create_suit"
	FUNCTION_LIKE_SUIT      = "like_suit"
	FUNCTION_COMMENT_SUIT   = "comment_on_suit"

	// MAX_SUIT_CONTENT_LENGTH is the maximum number of characters in a suit or comment
	MAX_SUIT_CONTENT_LENGTH = 280

	// SUI_CLOCK_OBJECT_ID is the shared system clock object passed to timestamped calls
	SUI_CLOCK_OBJECT_ID = "0x6"

	// OBJECT_ID_LENGTH is the byte length of a Sui object id or address
	OBJECT_ID_LENGTH = 32
)
