// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"agriplot.io/agriplot/ent/agentprofile"
	"agriplot.io/agriplot/ent/emaillog"
	"agriplot.io/agriplot/ent/landownerprofile"
	"agriplot.io/agriplot/ent/notification"
	"agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/schema"
	"agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/ent/verificationlogentry"
	"agriplot.io/agriplot/ent/verificationrecord"
	"agriplot.io/agriplot/ent/verificationtask"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentprofileMixin := schema.AgentProfile{}.Mixin()
	agentprofileMixinFields0 := agentprofileMixin[0].Fields()
	_ = agentprofileMixinFields0
	agentprofileFields := schema.AgentProfile{}.Fields()
	_ = agentprofileFields
	// agentprofileDescCreatedAt is the schema descriptor for created_at field.
	agentprofileDescCreatedAt := agentprofileMixinFields0[0].Descriptor()
	// agentprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentprofile.DefaultCreatedAt = agentprofileDescCreatedAt.Default.(func() time.Time)
	// agentprofileDescUpdatedAt is the schema descriptor for updated_at field.
	agentprofileDescUpdatedAt := agentprofileMixinFields0[1].Descriptor()
	// agentprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentprofile.DefaultUpdatedAt = agentprofileDescUpdatedAt.Default.(func() time.Time)
	// agentprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentprofile.UpdateDefaultUpdatedAt = agentprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agentprofileDescUserID is the schema descriptor for user_id field.
	agentprofileDescUserID := agentprofileFields[1].Descriptor()
	// agentprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	agentprofile.UserIDValidator = agentprofileDescUserID.Validators[0].(func(string) error)
	// agentprofileDescFullName is the schema descriptor for full_name field.
	agentprofileDescFullName := agentprofileFields[2].Descriptor()
	// agentprofile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	agentprofile.FullNameValidator = agentprofileDescFullName.Validators[0].(func(string) error)
	// agentprofileDescVerified is the schema descriptor for verified field.
	agentprofileDescVerified := agentprofileFields[5].Descriptor()
	// agentprofile.DefaultVerified holds the default value on creation for the verified field.
	agentprofile.DefaultVerified = agentprofileDescVerified.Default.(bool)
	emaillogMixin := schema.EmailLog{}.Mixin()
	emaillogMixinFields0 := emaillogMixin[0].Fields()
	_ = emaillogMixinFields0
	emaillogFields := schema.EmailLog{}.Fields()
	_ = emaillogFields
	// emaillogDescCreatedAt is the schema descriptor for created_at field.
	emaillogDescCreatedAt := emaillogMixinFields0[0].Descriptor()
	// emaillog.DefaultCreatedAt holds the default value on creation for the created_at field.
	emaillog.DefaultCreatedAt = emaillogDescCreatedAt.Default.(func() time.Time)
	// emaillogDescRecipient is the schema descriptor for recipient field.
	emaillogDescRecipient := emaillogFields[1].Descriptor()
	// emaillog.RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	emaillog.RecipientValidator = emaillogDescRecipient.Validators[0].(func(string) error)
	// emaillogDescSubject is the schema descriptor for subject field.
	emaillogDescSubject := emaillogFields[2].Descriptor()
	// emaillog.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	emaillog.SubjectValidator = emaillogDescSubject.Validators[0].(func(string) error)
	// emaillogDescTemplate is the schema descriptor for template field.
	emaillogDescTemplate := emaillogFields[3].Descriptor()
	// emaillog.TemplateValidator is a validator for the "template" field. It is called by the builders before save.
	emaillog.TemplateValidator = emaillogDescTemplate.Validators[0].(func(string) error)
	landownerprofileMixin := schema.LandownerProfile{}.Mixin()
	landownerprofileMixinFields0 := landownerprofileMixin[0].Fields()
	_ = landownerprofileMixinFields0
	landownerprofileFields := schema.LandownerProfile{}.Fields()
	_ = landownerprofileFields
	// landownerprofileDescCreatedAt is the schema descriptor for created_at field.
	landownerprofileDescCreatedAt := landownerprofileMixinFields0[0].Descriptor()
	// landownerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	landownerprofile.DefaultCreatedAt = landownerprofileDescCreatedAt.Default.(func() time.Time)
	// landownerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	landownerprofileDescUpdatedAt := landownerprofileMixinFields0[1].Descriptor()
	// landownerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	landownerprofile.DefaultUpdatedAt = landownerprofileDescUpdatedAt.Default.(func() time.Time)
	// landownerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	landownerprofile.UpdateDefaultUpdatedAt = landownerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// landownerprofileDescUserID is the schema descriptor for user_id field.
	landownerprofileDescUserID := landownerprofileFields[1].Descriptor()
	// landownerprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	landownerprofile.UserIDValidator = landownerprofileDescUserID.Validators[0].(func(string) error)
	// landownerprofileDescFullName is the schema descriptor for full_name field.
	landownerprofileDescFullName := landownerprofileFields[2].Descriptor()
	// landownerprofile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	landownerprofile.FullNameValidator = landownerprofileDescFullName.Validators[0].(func(string) error)
	// landownerprofileDescVerified is the schema descriptor for verified field.
	landownerprofileDescVerified := landownerprofileFields[6].Descriptor()
	// landownerprofile.DefaultVerified holds the default value on creation for the verified field.
	landownerprofile.DefaultVerified = landownerprofileDescVerified.Default.(bool)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	plotMixin := schema.Plot{}.Mixin()
	plotMixinFields0 := plotMixin[0].Fields()
	_ = plotMixinFields0
	plotFields := schema.Plot{}.Fields()
	_ = plotFields
	// plotDescCreatedAt is the schema descriptor for created_at field.
	plotDescCreatedAt := plotMixinFields0[0].Descriptor()
	// plot.DefaultCreatedAt holds the default value on creation for the created_at field.
	plot.DefaultCreatedAt = plotDescCreatedAt.Default.(func() time.Time)
	// plotDescUpdatedAt is the schema descriptor for updated_at field.
	plotDescUpdatedAt := plotMixinFields0[1].Descriptor()
	// plot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plot.DefaultUpdatedAt = plotDescUpdatedAt.Default.(func() time.Time)
	// plot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plot.UpdateDefaultUpdatedAt = plotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// plotDescTitle is the schema descriptor for title field.
	plotDescTitle := plotFields[1].Descriptor()
	// plot.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	plot.TitleValidator = func() func(string) error {
		validators := plotDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// plotDescLocation is the schema descriptor for location field.
	plotDescLocation := plotFields[2].Descriptor()
	// plot.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	plot.LocationValidator = func() func(string) error {
		validators := plotDescLocation.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(location string) error {
			for _, fn := range fns {
				if err := fn(location); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// plotDescArea is the schema descriptor for area field.
	plotDescArea := plotFields[3].Descriptor()
	// plot.AreaValidator is a validator for the "area" field. It is called by the builders before save.
	plot.AreaValidator = plotDescArea.Validators[0].(func(float64) error)
	// plotDescListed is the schema descriptor for listed field.
	plotDescListed := plotFields[10].Descriptor()
	// plot.DefaultListed holds the default value on creation for the listed field.
	plot.DefaultListed = plotDescListed.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescStaff is the schema descriptor for staff field.
	userDescStaff := userFields[4].Descriptor()
	// user.DefaultStaff holds the default value on creation for the staff field.
	user.DefaultStaff = userDescStaff.Default.(bool)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[5].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
	verificationlogentryMixin := schema.VerificationLogEntry{}.Mixin()
	verificationlogentryMixinFields0 := verificationlogentryMixin[0].Fields()
	_ = verificationlogentryMixinFields0
	verificationlogentryFields := schema.VerificationLogEntry{}.Fields()
	_ = verificationlogentryFields
	// verificationlogentryDescCreatedAt is the schema descriptor for created_at field.
	verificationlogentryDescCreatedAt := verificationlogentryMixinFields0[0].Descriptor()
	// verificationlogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationlogentry.DefaultCreatedAt = verificationlogentryDescCreatedAt.Default.(func() time.Time)
	// verificationlogentryDescAction is the schema descriptor for action field.
	verificationlogentryDescAction := verificationlogentryFields[1].Descriptor()
	// verificationlogentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	verificationlogentry.ActionValidator = verificationlogentryDescAction.Validators[0].(func(string) error)
	// verificationlogentryDescSubjectKind is the schema descriptor for subject_kind field.
	verificationlogentryDescSubjectKind := verificationlogentryFields[2].Descriptor()
	// verificationlogentry.SubjectKindValidator is a validator for the "subject_kind" field. It is called by the builders before save.
	verificationlogentry.SubjectKindValidator = verificationlogentryDescSubjectKind.Validators[0].(func(string) error)
	// verificationlogentryDescSubjectID is the schema descriptor for subject_id field.
	verificationlogentryDescSubjectID := verificationlogentryFields[3].Descriptor()
	// verificationlogentry.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	verificationlogentry.SubjectIDValidator = verificationlogentryDescSubjectID.Validators[0].(func(string) error)
	// verificationlogentryDescActor is the schema descriptor for actor field.
	verificationlogentryDescActor := verificationlogentryFields[4].Descriptor()
	// verificationlogentry.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	verificationlogentry.ActorValidator = verificationlogentryDescActor.Validators[0].(func(string) error)
	verificationrecordMixin := schema.VerificationRecord{}.Mixin()
	verificationrecordMixinFields0 := verificationrecordMixin[0].Fields()
	_ = verificationrecordMixinFields0
	verificationrecordFields := schema.VerificationRecord{}.Fields()
	_ = verificationrecordFields
	// verificationrecordDescCreatedAt is the schema descriptor for created_at field.
	verificationrecordDescCreatedAt := verificationrecordMixinFields0[0].Descriptor()
	// verificationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationrecord.DefaultCreatedAt = verificationrecordDescCreatedAt.Default.(func() time.Time)
	// verificationrecordDescUpdatedAt is the schema descriptor for updated_at field.
	verificationrecordDescUpdatedAt := verificationrecordMixinFields0[1].Descriptor()
	// verificationrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	verificationrecord.DefaultUpdatedAt = verificationrecordDescUpdatedAt.Default.(func() time.Time)
	// verificationrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	verificationrecord.UpdateDefaultUpdatedAt = verificationrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// verificationrecordDescSubjectID is the schema descriptor for subject_id field.
	verificationrecordDescSubjectID := verificationrecordFields[2].Descriptor()
	// verificationrecord.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	verificationrecord.SubjectIDValidator = verificationrecordDescSubjectID.Validators[0].(func(string) error)
	verificationtaskMixin := schema.VerificationTask{}.Mixin()
	verificationtaskMixinFields0 := verificationtaskMixin[0].Fields()
	_ = verificationtaskMixinFields0
	verificationtaskFields := schema.VerificationTask{}.Fields()
	_ = verificationtaskFields
	// verificationtaskDescCreatedAt is the schema descriptor for created_at field.
	verificationtaskDescCreatedAt := verificationtaskMixinFields0[0].Descriptor()
	// verificationtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationtask.DefaultCreatedAt = verificationtaskDescCreatedAt.Default.(func() time.Time)
	// verificationtaskDescUpdatedAt is the schema descriptor for updated_at field.
	verificationtaskDescUpdatedAt := verificationtaskMixinFields0[1].Descriptor()
	// verificationtask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	verificationtask.DefaultUpdatedAt = verificationtaskDescUpdatedAt.Default.(func() time.Time)
	// verificationtask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	verificationtask.UpdateDefaultUpdatedAt = verificationtaskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
