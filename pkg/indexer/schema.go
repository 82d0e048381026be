package indexer

// actionSchema validates one observed-action record before conversion.
// Both parameter encodings are accepted: the flat {type,name,value} array
// and the keyed record.
const actionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["index"],
  "properties": {
    "index": {"type": "integer", "minimum": 0},
    "type": {"type": "string"},
    "fullyQualifiedType": {"type": "string"},
    "packageId": {"type": "string"},
    "coinType": {"type": "string"},
    "unparsed": {"type": "boolean"},
    "params": {
      "oneOf": [
        {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name"],
            "properties": {
              "type": {"type": "string"},
              "name": {"type": "string"}
            }
          }
        },
        {"type": "object"},
        {"type": "null"}
      ]
    }
  },
  "anyOf": [
    {"required": ["type"]},
    {"required": ["fullyQualifiedType"]},
    {"required": ["unparsed"]}
  ]
}`
