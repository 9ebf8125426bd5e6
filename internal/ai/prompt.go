package ai

// DefaultModel is fast and cheap enough for one-shot document summaries.
const DefaultModel = "gemini-flash-latest"

// SlidePrompt asks for a three-slide Thai executive summary of a financial
// statement image. The separator it requests must stay in sync with
// slides.Delimiter.
const SlidePrompt = `
ในฐานะนักออกแบบ Presentation และนักวิเคราะห์การเงิน กำลังสร้างสไลด์สำหรับผู้บริหารในรูปแบบที่คล้ายกับ Canva
โปรดวิเคราะห์ภาพงบการเงินและสร้าง "เนื้อหา" สำหรับสไลด์ 3 หน้าเป็นภาษาไทย โดยใช้ตัวคั่น ---SLIDE_BREAK--- ระหว่างแต่ละสไลด์อย่างชัดเจน

สำหรับแต่ละสไลด์ ให้มีโครงสร้างดังนี้:

**[แนะนำไอคอน/ภาพประกอบที่เหมาะสม เช่น 📊, 📈, 🔮]**

### **[หัวข้อสไลด์ที่ชัดเจน]**

*   [เนื้อหาหลักในรูปแบบ Bullet Point ที่กระชับและเข้าใจง่าย]

---SLIDE_BREAK---

**ตัวอย่างสไลด์ที่ 1: ภาพรวม**
**ไอคอน: 📊**
### **ภาพรวมสรุปสำหรับผู้บริหาร**
*   **ประเภทเอกสาร:** งบกำไรขาดทุน ประจำปี 256X
*   **ไฮไลท์:** รายได้รวมเติบโต 15% แตะ 120 ล้านบาท

---SLIDE_BREAK---

**ตัวอย่างสไลด์ที่ 2: เจาะลึก**
**ไอคอน: 📈**
### **เจาะลึกผลการดำเนินงาน (KPIs)**
*   **อัตรากำไรสุทธิ:** อยู่ที่ 12% แสดงถึงความสามารถในการทำกำไรที่ดี
*   **อัตราส่วนสภาพคล่อง:** 1.8 เท่า บ่งชี้ว่าบริษัทมีสภาพคล่องแข็งแกร่ง

---SLIDE_BREAK---

**ตัวอย่างสไลด์ที่ 3: อนาคต**
**ไอคอน: 🔮**
### **ทิศทางและข้อเสนอแนะ**
*   **แนวโน้ม:** คาดการณ์ว่ารายได้จะเติบโตต่อเนื่องในไตรมาสหน้า
*   **ข้อเสนอแนะ:** มุ่งเน้นการลงทุนด้านการตลาดดิจิทัลเพื่อขยายฐานลูกค้า
`
