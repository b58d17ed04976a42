package manifest

import (
	"fmt"

	"github.com/acronis/go-stacktrace"
	"github.com/xeipuuv/gojsonschema"
)

const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["versions"],
  "properties": {
    "latest": {
      "type": "object",
      "properties": {
        "release": {"type": "string"},
        "snapshot": {"type": "string"}
      }
    },
    "versions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "url"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "url": {"type": "string", "minLength": 1},
          "time": {"type": "string"},
          "releaseTime": {"type": "string"}
        }
      }
    }
  }
}`

const descriptorSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "mainClass", "assetIndex", "downloads"],
  "definitions": {
    "download": {
      "type": "object",
      "required": ["sha1", "url"],
      "properties": {
        "sha1": {"type": "string"},
        "size": {"type": "integer", "minimum": 0},
        "url": {"type": "string", "minLength": 1}
      }
    }
  },
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "type": {"type": "string"},
    "mainClass": {"type": "string", "minLength": 1},
    "time": {"type": "string"},
    "releaseTime": {"type": "string"},
    "assetIndex": {
      "allOf": [
        {"$ref": "#/definitions/download"},
        {"type": "object", "required": ["id"], "properties": {"id": {"type": "string", "minLength": 1}}}
      ]
    },
    "downloads": {
      "type": "object",
      "required": ["client"],
      "properties": {
        "client": {"$ref": "#/definitions/download"}
      }
    },
    "libraries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "downloads": {
            "type": "object",
            "properties": {
              "artifact": {
                "allOf": [
                  {"$ref": "#/definitions/download"},
                  {"type": "object", "required": ["path"], "properties": {"path": {"type": "string", "minLength": 1}}}
                ]
              }
            }
          },
          "rules": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["action"],
              "properties": {
                "action": {"type": "string"},
                "os": {
                  "type": "object",
                  "properties": {"name": {"type": "string"}}
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	compiledCatalogSchema    = MustCompileSchema(catalogSchema)
	compiledDescriptorSchema = MustCompileSchema(descriptorSchema)
)

func MustCompileSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Errorf("compile schema: %w", err))
	}
	return s
}

func validatorMessagesAsStackTrace(errResults []gojsonschema.ResultError) *stacktrace.StackTrace {
	st := stacktrace.New("validation failed")
	for i := range errResults {
		errResult := errResults[i]
		_ = st.Append(stacktrace.New(errResult.Description(), stacktrace.WithInfo("context", errResult.Context().String("."))))
	}
	return st
}

func validateDocument(s *gojsonschema.Schema, data []byte) error {
	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if !res.Valid() {
		return validatorMessagesAsStackTrace(res.Errors())
	}
	return nil
}
