// Package eval selects things with expr-lang expressions.
//
// A query sees the fields and functions described at ThingEnv plus the
// registered symbols, getenv and glob by default:
//
//	kind == "Object" && get("DefinitionType") == "TREE_OAK"
//	has("ScriptData.Health") && get("ScriptData.Health") > 50
//	call("Pos") == "Vector" && args("Pos")[0] > 10.0
package eval
