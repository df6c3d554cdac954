package validate

// Field schemas for each request payload. Shared by the create and update
// paths; Create enforces the Required subset, Update the at-least-one rule.

var DeveloperSchema = Schema{
	Entity: "developer",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: String, Required: true},
		{Key: "email", Column: "email", Kind: String, Required: true},
	},
}

var DeveloperInfoSchema = Schema{
	Entity: "developer info",
	Fields: []Field{
		{Key: "developerSince", Column: "developer_since", Kind: Date, Required: true},
		{Key: "preferredOS", Column: "preferred_os", Kind: String, Required: true},
	},
}

var ProjectSchema = Schema{
	Entity: "project",
	Fields: []Field{
		{Key: "name", Column: "name", Kind: String, Required: true},
		{Key: "description", Column: "description", Kind: String, Required: true},
		{Key: "estimatedTime", Column: "estimated_time", Kind: String, Required: true},
		{Key: "repository", Column: "repository", Kind: String, Required: true},
		{Key: "startDate", Column: "start_date", Kind: Date, Required: true},
		{Key: "developerId", Column: "developer_id", Kind: Number, Required: true},
		{Key: "endDate", Column: "end_date", Kind: Date},
	},
}
