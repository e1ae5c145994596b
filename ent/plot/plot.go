// Code generated by ent, DO NOT EDIT.

package plot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plot type in the database.
	Label = "plot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldArea holds the string denoting the area field in the database.
	FieldArea = "area"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldLandType holds the string denoting the land_type field in the database.
	FieldLandType = "land_type"
	// FieldLandownerID holds the string denoting the landowner_id field in the database.
	FieldLandownerID = "landowner_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldParcelNumber holds the string denoting the parcel_number field in the database.
	FieldParcelNumber = "parcel_number"
	// FieldSoilType holds the string denoting the soil_type field in the database.
	FieldSoilType = "soil_type"
	// FieldListed holds the string denoting the listed field in the database.
	FieldListed = "listed"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// Table holds the table name of the plot in the database.
	Table = "plots"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "verification_tasks"
	// TasksInverseTable is the table name for the VerificationTask entity.
	// It exists in this package in order to avoid circular dependency with the "verificationtask" package.
	TasksInverseTable = "verification_tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "plot_tasks"
)

// Columns holds all SQL columns for plot fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldLocation,
	FieldArea,
	FieldPrice,
	FieldLandType,
	FieldLandownerID,
	FieldAgentID,
	FieldParcelNumber,
	FieldSoilType,
	FieldListed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// LocationValidator is a validator for the "location" field. It is called by the builders before save.
	LocationValidator func(string) error
	// AreaValidator is a validator for the "area" field. It is called by the builders before save.
	AreaValidator func(float64) error
	// DefaultListed holds the default value on creation for the "listed" field.
	DefaultListed bool
)

// LandType defines the type for the "land_type" enum field.
type LandType string

// LandTypeAgricultural is the default value of the LandType enum.
const DefaultLandType = LandTypeAgricultural

// LandType values.
const (
	LandTypeAgricultural LandType = "agricultural"
	LandTypeResidential  LandType = "residential"
	LandTypeCommercial   LandType = "commercial"
	LandTypeMixedUse     LandType = "mixed_use"
)

func (lt LandType) String() string {
	return string(lt)
}

// LandTypeValidator is a validator for the "land_type" field enum values. It is called by the builders before save.
func LandTypeValidator(lt LandType) error {
	switch lt {
	case LandTypeAgricultural, LandTypeResidential, LandTypeCommercial, LandTypeMixedUse:
		return nil
	default:
		return fmt.Errorf("plot: invalid enum value for land_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the Plot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByArea orders the results by the area field.
func ByArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArea, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByLandType orders the results by the land_type field.
func ByLandType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLandType, opts...).ToFunc()
}

// ByLandownerID orders the results by the landowner_id field.
func ByLandownerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLandownerID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByParcelNumber orders the results by the parcel_number field.
func ByParcelNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParcelNumber, opts...).ToFunc()
}

// BySoilType orders the results by the soil_type field.
func BySoilType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoilType, opts...).ToFunc()
}

// ByListed orders the results by the listed field.
func ByListed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListed, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
