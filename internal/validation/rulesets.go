package validation

// maxAvatarSize is the upload cap for the avatar file: 5 MiB.
const maxAvatarSize = 5 * 1024 * 1024

// allowedAvatarTypes whitelists the declared MIME types an avatar
// upload may carry.
var allowedAvatarTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// usernameRule and emailRule are shared verbatim between the
// multipart and urlencoded rule sets.
var usernameRule = FieldRule{
	Name:     "username",
	Required: true,
	MinLen:   3,
	MaxLen:   150,
	Messages: FieldMessages{
		Required: "Username is required",
		TooShort: "Username must be at least 3 characters long",
		TooLong:  "Username cannot exceed 150 characters",
	},
	Predicates: []Predicate{{
		Name:    "username_chars",
		Check:   isUsernameChars,
		Message: "Username can only contain letters, numbers, and underscores",
	}},
}

var emailRule = FieldRule{
	Name:     "email",
	Required: true,
	Messages: FieldMessages{
		Required: "Email is required",
	},
	Predicates: []Predicate{{
		Name:    "email_syntax",
		Check:   isValidEmail,
		Message: "Please enter a valid email address",
	}},
}

// MultipartRules validates the multipart/form-data profile: a
// username, an email, and an optional avatar upload.
var MultipartRules = RuleSet{
	Name:   "multipart",
	Fields: []FieldRule{usernameRule, emailRule},
	Files: []FileRule{{
		Name:         "avatar",
		MaxSize:      maxAvatarSize,
		AllowedTypes: allowedAvatarTypes,
		Messages: FileMessages{
			TooLarge:    "File size cannot exceed 5MB",
			InvalidType: "Invalid file type. Allowed types: image/jpeg, image/png, image/gif, image/webp",
		},
	}},
}

// URLEncodedRules validates the application/x-www-form-urlencoded
// profile: username, email, password, and an optional bio.
var URLEncodedRules = RuleSet{
	Name: "urlencoded",
	Fields: []FieldRule{
		usernameRule,
		emailRule,
		{
			Name:     "password",
			Required: true,
			MinLen:   8,
			Messages: FieldMessages{
				Required: "Password is required",
				TooShort: "Password must be at least 8 characters long",
			},
			Predicates: []Predicate{
				{
					Name:    "not_all_numeric",
					Check:   isNotAllNumeric,
					Message: "Password cannot be entirely numeric",
				},
				{
					Name:    "mixed_case",
					Check:   hasMixedCase,
					Message: "Password must contain both uppercase and lowercase letters",
				},
			},
		},
		{
			Name:   "bio",
			MaxLen: 500,
			Messages: FieldMessages{
				TooLong: "Bio cannot exceed 500 characters",
			},
		},
	},
}
